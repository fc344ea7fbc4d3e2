package game

// AutoplayResult summarises a headless run driven by the autopilot.
type AutoplayResult struct {
	Ticks     int
	Runs      int
	Bounces   int
	Recycled  int
	BestScore float64
	LastScore float64
	Ends      map[EndReason]int
}

// Autoplay drives s for the given number of ticks, steering towards the
// nearest platform below the doodler and restarting after every game over.
// All input goes through the session's controller like real key presses.
func Autoplay(s *Session, ticks int) AutoplayResult {
	res := AutoplayResult{Ends: map[EndReason]int{}}
	if ticks <= 0 {
		return res
	}
	in := s.Input()
	if !s.Started() {
		in.EnqueueIntent(Intent{Kind: IntentStart})
	}
	res.Runs = 1
	steering := IntentNone

	for i := 0; i < ticks; i++ {
		if s.GameOver() {
			in.EnqueueIntent(Intent{Kind: IntentRestart})
			steering = IntentNone
		} else if want := steerTowards(s.Doodler(), s.field.platforms); want != IntentNone && want != steering {
			in.EnqueueIntent(Intent{Kind: want})
			steering = want
		}

		rep := s.Tick()
		res.Ticks++
		if rep.Restarted {
			res.Runs++
		}
		if rep.Bounced {
			res.Bounces++
		}
		res.Recycled += rep.Recycled
		if rep.Ended != EndNone {
			res.Ends[rep.Ended]++
		}
		if rep.Score > res.BestScore {
			res.BestScore = rep.Score
		}
		res.LastScore = rep.Score
	}
	return res
}

func steerTowards(d Doodler, platforms []Platform) IntentKind {
	feet := d.Y + d.Height
	best := -1
	for i, p := range platforms {
		if p.Y < feet {
			continue
		}
		if best < 0 || p.Y < platforms[best].Y {
			best = i
		}
	}
	if best < 0 {
		return IntentNone
	}
	target := platforms[best].X + platforms[best].Width/2
	centre := d.X + d.Width/2
	switch {
	case centre < target-d.Width/4:
		return IntentMoveRight
	case centre > target+d.Width/4:
		return IntentMoveLeft
	default:
		return IntentNone
	}
}
