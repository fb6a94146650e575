package game

import (
	"errors"
	"testing"
)

func testPlayers() []*Player {
	return []*Player{
		NewPlayer("c0", "Alpha", 0),
		NewPlayer("c1", "Bravo", 1),
		NewPlayer("c2", "Charlie", 2),
		NewPlayer("c3", "Delta", 3),
	}
}

func TestResolveShotHit(t *testing.T) {
	players := testPlayers()

	res, err := ResolveShot(players, "c0", 1)
	if err != nil {
		t.Fatalf("ResolveShot: %v", err)
	}
	if !res.Hit || res.Kill {
		t.Fatalf("expected hit without kill, got hit=%v kill=%v", res.Hit, res.Kill)
	}
	if got := players[1].Lives; got != StartingLives-1 {
		t.Fatalf("target lives = %d, want %d", got, StartingLives-1)
	}
	if got := players[0].Score; got != HitScore {
		t.Fatalf("shooter score = %d, want %d", got, HitScore)
	}
	if !players[0].Reloading {
		t.Fatalf("shooter should be reloading after a shot")
	}
}

func TestResolveShotRejectsWhileReloading(t *testing.T) {
	players := testPlayers()

	if _, err := ResolveShot(players, "c0", 1); err != nil {
		t.Fatalf("first shot: %v", err)
	}
	_, err := ResolveShot(players, "c0", 2)
	if !errors.Is(err, ErrShooterReloading) {
		t.Fatalf("second shot err = %v, want ErrShooterReloading", err)
	}
	if players[2].Lives != StartingLives {
		t.Fatalf("rejected shot must not damage target, lives = %d", players[2].Lives)
	}
}

func TestResolveShotPreconditionOrder(t *testing.T) {
	players := testPlayers()

	if _, err := ResolveShot(players, "ghost", 1); !errors.Is(err, ErrShooterNotFound) {
		t.Fatalf("unknown shooter err = %v, want ErrShooterNotFound", err)
	}
	if _, err := ResolveShot(players, "c0", 9); !errors.Is(err, ErrTargetNotFound) {
		t.Fatalf("unknown target err = %v, want ErrTargetNotFound", err)
	}
	if _, err := ResolveShot(players, "c0", 0); !errors.Is(err, ErrCannotShootSelf) {
		t.Fatalf("self shot err = %v, want ErrCannotShootSelf", err)
	}
	if players[0].Reloading {
		t.Fatalf("failed shots must not start a reload")
	}
}

func TestResolveShotEliminatesExactlyOnce(t *testing.T) {
	players := testPlayers()

	var last ShotResult
	for i := 0; i < StartingLives; i++ {
		players[0].Reloading = false
		res, err := ResolveShot(players, "c0", 1)
		if err != nil {
			t.Fatalf("shot %d: %v", i+1, err)
		}
		last = res
	}
	if !last.Kill {
		t.Fatalf("final shot should report the kill")
	}
	if players[1].Lives != 0 {
		t.Fatalf("target lives = %d, want 0", players[1].Lives)
	}
	if players[0].Kills != 1 {
		t.Fatalf("shooter kills = %d, want 1", players[0].Kills)
	}
	if players[0].Score != StartingLives*HitScore {
		t.Fatalf("shooter score = %d, want %d", players[0].Score, StartingLives*HitScore)
	}

	// A late shot at the corpse spends the trigger but changes nothing.
	players[0].Reloading = false
	res, err := ResolveShot(players, "c0", 1)
	if err != nil {
		t.Fatalf("late shot: %v", err)
	}
	if res.Hit || res.Kill {
		t.Fatalf("late shot should be a no-op, got hit=%v kill=%v", res.Hit, res.Kill)
	}
	if players[0].Kills != 1 || players[0].Score != StartingLives*HitScore {
		t.Fatalf("late shot mutated shooter stats: kills=%d score=%d", players[0].Kills, players[0].Score)
	}
	if !players[0].Reloading {
		t.Fatalf("late shot should still start a reload")
	}
}

func TestResolveBomb(t *testing.T) {
	players := testPlayers()
	players[0].Score = BombCost
	players[1].Lives = 1 // goes negative under bomb damage
	players[2].Lives = 0 // already out, must be skipped

	res, err := ResolveBomb(players, "c0")
	if err != nil {
		t.Fatalf("ResolveBomb: %v", err)
	}
	if players[0].Score != 0 {
		t.Fatalf("actor score = %d, want 0", players[0].Score)
	}
	if len(res.Victims) != 2 {
		t.Fatalf("victims = %d, want 2", len(res.Victims))
	}
	if len(res.Killed) != 1 || res.Killed[0] != players[1] {
		t.Fatalf("expected exactly Bravo killed, got %d killed", len(res.Killed))
	}
	if players[1].Lives != 1-BombDamage {
		t.Fatalf("Bravo lives = %d, want %d", players[1].Lives, 1-BombDamage)
	}
	if players[2].Lives != 0 {
		t.Fatalf("eliminated player must not take bomb damage, lives = %d", players[2].Lives)
	}
	if players[3].Lives != StartingLives-BombDamage {
		t.Fatalf("Delta lives = %d, want %d", players[3].Lives, StartingLives-BombDamage)
	}
	if players[0].Kills != 1 {
		t.Fatalf("actor kills = %d, want 1", players[0].Kills)
	}
}

func TestResolveBombInsufficientScore(t *testing.T) {
	players := testPlayers()
	players[0].Score = BombCost - 1

	_, err := ResolveBomb(players, "c0")
	if !errors.Is(err, ErrInsufficientScore) {
		t.Fatalf("err = %v, want ErrInsufficientScore", err)
	}
	if players[1].Lives != StartingLives {
		t.Fatalf("rejected bomb must not damage anyone, lives = %d", players[1].Lives)
	}
}

func TestWinner(t *testing.T) {
	players := testPlayers()
	if w := Winner(players); w != nil {
		t.Fatalf("no winner expected with everyone alive, got %q", w.Name)
	}
	players[0].Lives = 0
	players[1].Lives = 0
	players[2].Lives = -1
	w := Winner(players)
	if w == nil || w.Name != "Delta" {
		t.Fatalf("winner = %v, want Delta", w)
	}
	if got := Alive(players); got != 1 {
		t.Fatalf("Alive = %d, want 1", got)
	}
}
