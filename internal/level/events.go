package level

// EventKind names something that happened during an update.
type EventKind int

const (
	EventHurt     EventKind = iota // projectile hit that cost a life
	EventCrushed                   // crush that cost a life
	EventShot                      // monster fired
	EventWon                       // player reached the monster
	EventGameOver                  // last life lost
)

func (k EventKind) String() string {
	switch k {
	case EventHurt:
		return "hurt"
	case EventCrushed:
		return "crushed"
	case EventShot:
		return "shot"
	case EventWon:
		return "won"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event is raised by Update; hosts turn events into sounds and log lines.
type Event struct {
	Kind EventKind
	Time float64
}
