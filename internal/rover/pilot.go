package rover

// Pilot picks the move that brings the rover toward the centre of the row
// that will reach it on the next step. On a two-row field the rover sits on
// the top row, so it steers for that row instead.
func Pilot(t *Tunnel) Command {
	if !t.Alive() {
		return CommandNone
	}
	row := max(t.RoverRow()-1, 0)
	centre := t.Row(row) + t.geom.CorridorWidth/2

	switch {
	case t.RoverX() < centre:
		return CommandRight
	case t.RoverX() > centre:
		return CommandLeft
	default:
		return CommandNone
	}
}
