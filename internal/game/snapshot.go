package game

// Snapshot contains the session state as primitive values.
// It is used for determinism checks and debug logging.
type Snapshot struct {
	Tick     uint64
	Score    int
	Finished bool

	// Cannon state
	CannonX  int
	CannonY  int
	Power    int
	Charging bool

	// Each shell is 5 ints: X, Y, VX, VY, Radius
	ShellCount int
	ShellData  []int

	// Each bullet is 2 ints: X, Y
	BulletCount int
	BulletData  []int

	// Each target is 3 ints: X, Y, Size
	TargetCount int
	TargetData  []int
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	shellData := make([]int, len(s.shells)*5)
	for i, sh := range s.shells {
		idx := i * 5
		shellData[idx] = int(sh.Pos.X)
		shellData[idx+1] = int(sh.Pos.Y)
		shellData[idx+2] = int(sh.Vel.X)
		shellData[idx+3] = int(sh.Vel.Y)
		shellData[idx+4] = sh.Radius()
	}

	bulletData := make([]int, len(s.bullets)*2)
	for i, b := range s.bullets {
		idx := i * 2
		bulletData[idx] = int(b.Pos.X)
		bulletData[idx+1] = int(b.Pos.Y)
	}

	targetData := make([]int, len(s.targets)*3)
	for i, t := range s.targets {
		idx := i * 3
		targetData[idx] = int(t.Pos.X)
		targetData[idx+1] = int(t.Pos.Y)
		targetData[idx+2] = t.Size
	}

	return Snapshot{
		Tick:     uint64(s.tickCount), //#nosec G115 -- tick count is always positive
		Score:    s.score,
		Finished: s.finished,

		CannonX:  int(s.cannon.Pos.X),
		CannonY:  int(s.cannon.Pos.Y),
		Power:    s.cannon.Power,
		Charging: s.cannon.Active(),

		ShellCount:  len(s.shells),
		ShellData:   shellData,
		BulletCount: len(s.bullets),
		BulletData:  bulletData,
		TargetCount: len(s.targets),
		TargetData:  targetData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CannonX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CannonY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Power)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShellCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TargetCount) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Charging)
	h = h*31 + boolBit(snap.Finished)

	for _, v := range snap.ShellData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.TargetData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
