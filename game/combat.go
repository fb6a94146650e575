package game

// Combat resolution is pure: callers pass the session's player slice and
// apply timers/broadcasts from the returned result. Mutation happens here,
// serialization is the caller's problem.

type ShotResult struct {
	Shooter *Player
	Target  *Player
	Hit     bool // damage applied (target was alive)
	Kill    bool // this shot brought the target to zero
}

// ResolveShot validates and applies one shot. On success the shooter is
// always reloading afterwards, hit or not; a shot at an already-eliminated
// target spends the trigger pull but changes nothing else.
func ResolveShot(players []*Player, shooterConn string, targetMarker int) (ShotResult, error) {
	shooter := FindByConn(players, shooterConn)
	if shooter == nil {
		return ShotResult{}, ErrShooterNotFound
	}
	target := FindByMarker(players, targetMarker)
	if target == nil {
		return ShotResult{}, ErrTargetNotFound
	}
	if shooter.Reloading {
		return ShotResult{}, ErrShooterReloading
	}
	if shooter == target {
		return ShotResult{}, ErrCannotShootSelf
	}

	shooter.Reloading = true
	res := ShotResult{Shooter: shooter, Target: target}
	if target.Lives <= 0 {
		return res, nil
	}
	target.Lives--
	shooter.Score += HitScore
	res.Hit = true
	if target.Lives == 0 {
		shooter.Kills++
		res.Kill = true
	}
	return res, nil
}

type BombResult struct {
	Actor   *Player
	Victims []*Player // every player damaged by the blast
	Killed  []*Player // subset of victims newly eliminated
}

// ResolveBomb applies area damage to every other living player. Lives are
// not clamped at zero; elimination triggers on the crossing only.
func ResolveBomb(players []*Player, actorConn string) (BombResult, error) {
	actor := FindByConn(players, actorConn)
	if actor == nil {
		return BombResult{}, ErrShooterNotFound
	}
	if actor.Score < BombCost {
		return BombResult{}, ErrInsufficientScore
	}

	actor.Score -= BombCost
	res := BombResult{Actor: actor}
	for _, p := range players {
		if p == actor || p.Lives <= 0 {
			continue
		}
		p.Lives -= BombDamage
		res.Victims = append(res.Victims, p)
		if p.Lives <= 0 {
			actor.Kills++
			res.Killed = append(res.Killed, p)
		}
	}
	return res, nil
}
