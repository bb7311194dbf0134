package runner

// Sprite strips, 7x4 cells each. Spaces are transparent.

var idleRows = []string{
	`   O   `,
	`  /|\  `,
	`   |   `,
	`  / \  `,
}

var runTorso = []string{
	`  /|\  `,
	`  -|\  `,
}

var runLegs = []string{
	`  / \  `,
	` _/  \ `,
	`   |\  `,
	`  /|   `,
	`  / >  `,
}

var jumpLegs = []string{
	` _/ \_ `,
	`  / \  `,
	`  |_|  `,
	`  \ /  `,
	` _/ \_ `,
}

var deadKeyframes = [][]string{
	{
		`   X   `,
		`  /|\  `,
		`   |   `,
		`  / \  `,
	},
	{
		`       `,
		`   X   `,
		`  /|\_ `,
		`  / >  `,
	},
	{
		`       `,
		`       `,
		`  X__  `,
		` /|__\ `,
	},
	{
		`       `,
		`       `,
		`       `,
		` X-+--<`,
	},
}

// spriteRows returns the rows to draw for a sprite id.
func spriteRows(s Sprite) []string {
	i := s.Frame - 1
	if i < 0 {
		i = 0
	}

	switch s.Pose {
	case PoseRun:
		return []string{`   O   `, runTorso[i%len(runTorso)], `   |   `, runLegs[i%len(runLegs)]}
	case PoseJump:
		return []string{`  \O/  `, `   |   `, `   |   `, jumpLegs[i%len(jumpLegs)]}
	case PoseDead:
		switch {
		case s.Frame >= 10:
			return deadKeyframes[3]
		case s.Frame >= 7:
			return deadKeyframes[2]
		case s.Frame >= 4:
			return deadKeyframes[1]
		default:
			return deadKeyframes[0]
		}
	default:
		return idleRows
	}
}
