// Package story drives the level progression of the adventure mode: the
// fixed level catalog, the reward formula, and the controller that applies
// round outcomes to the persistent progress.
package story

// Level describes the constraints of one story level. Levels are immutable
// data: defined once in the catalog (or loaded from configuration) and
// never mutated.
type Level struct {
	Name      string
	MinLen    int
	MaxLen    int // 0 means no upper bound
	MaxErrors int
	TimeLimit int // seconds
	Flavor    string
}

// Catalog returns the built-in 35-level arc. The first third is easy, the
// middle tightens the word lengths, and the final stretch runs long words
// on a short clock.
func Catalog() []Level {
	return []Level{
		// 1-15: easy
		{Name: "Village", MinLen: 3, MaxLen: 5, MaxErrors: 8, TimeLimit: 150, Flavor: "You set out from a quiet village."},
		{Name: "Meadow", MinLen: 3, MaxLen: 5, MaxErrors: 8, TimeLimit: 140, Flavor: "Grass ripples under a light breeze."},
		{Name: "Orchard", MinLen: 3, MaxLen: 6, MaxErrors: 8, TimeLimit: 140, Flavor: "Ripe fruit sweetens the air."},
		{Name: "Brook", MinLen: 3, MaxLen: 6, MaxErrors: 8, TimeLimit: 135, Flavor: "Clear water points the way."},
		{Name: "Thicket", MinLen: 3, MaxLen: 6, MaxErrors: 8, TimeLimit: 130, Flavor: "Leaves rustle all around you."},
		{Name: "Grove", MinLen: 3, MaxLen: 6, MaxErrors: 7, TimeLimit: 130, Flavor: "You slip between close-set trunks."},
		{Name: "Footpath", MinLen: 3, MaxLen: 6, MaxErrors: 7, TimeLimit: 125, Flavor: "The path winds on, unhurried."},
		{Name: "Wooden Bridge", MinLen: 4, MaxLen: 6, MaxErrors: 7, TimeLimit: 125, Flavor: "An old bridge creaks at every step."},
		{Name: "Mill", MinLen: 4, MaxLen: 6, MaxErrors: 7, TimeLimit: 120, Flavor: "The sails turn with the wind."},
		{Name: "Chapel", MinLen: 4, MaxLen: 6, MaxErrors: 7, TimeLimit: 120, Flavor: "A sacred hush urges you onward."},
		{Name: "Forest", MinLen: 4, MaxLen: 7, MaxErrors: 7, TimeLimit: 115, Flavor: "Tall trees swallow the light."},
		{Name: "Marsh", MinLen: 4, MaxLen: 7, MaxErrors: 7, TimeLimit: 110, Flavor: "The ground sinks under careful steps."},
		{Name: "Hillside", MinLen: 4, MaxLen: 7, MaxErrors: 7, TimeLimit: 110, Flavor: "The view widens as you climb."},
		{Name: "Ruined Tower", MinLen: 4, MaxLen: 7, MaxErrors: 7, TimeLimit: 105, Flavor: "Mossy stones murmur of old times."},
		{Name: "Rampart", MinLen: 4, MaxLen: 7, MaxErrors: 7, TimeLimit: 105, Flavor: "Battlements watch over the valley."},
		// 16-25: medium
		{Name: "Valley", MinLen: 5, MaxLen: 8, MaxErrors: 6, TimeLimit: 100, Flavor: "An echo carries your steps back to you."},
		{Name: "River", MinLen: 5, MaxLen: 8, MaxErrors: 6, TimeLimit: 100, Flavor: "The current dares you; a ford appears."},
		{Name: "Cave", MinLen: 5, MaxLen: 8, MaxErrors: 6, TimeLimit: 95, Flavor: "The rock sweats, the air turns cold."},
		{Name: "Ancient Floor", MinLen: 5, MaxLen: 8, MaxErrors: 6, TimeLimit: 95, Flavor: "A carved pavement catches your eye."},
		{Name: "Stone Bridge", MinLen: 6, MaxLen: 9, MaxErrors: 6, TimeLimit: 90, Flavor: "The river roars under steady steps."},
		{Name: "Cliffs", MinLen: 6, MaxLen: 9, MaxErrors: 6, TimeLimit: 90, Flavor: "Wind howls; the sea foams far below."},
		{Name: "Mountains", MinLen: 6, MaxLen: 10, MaxErrors: 6, TimeLimit: 85, Flavor: "The air thins, the sky hardens."},
		{Name: "Bastion", MinLen: 6, MaxLen: 10, MaxErrors: 6, TimeLimit: 85, Flavor: "Arrow slits sweep the horizon."},
		{Name: "Canyon", MinLen: 7, MaxLen: 10, MaxErrors: 6, TimeLimit: 80, Flavor: "Red walls close in around your voice."},
		{Name: "Glacier", MinLen: 7, MaxLen: 10, MaxErrors: 6, TimeLimit: 80, Flavor: "The ice cracks like old parchment."},
		// 26-35: hard
		{Name: "Jungle", MinLen: 8, MaxLen: 11, MaxErrors: 5, TimeLimit: 75, Flavor: "Distant cries tear through the canopy."},
		{Name: "Temple", MinLen: 8, MaxLen: 11, MaxErrors: 5, TimeLimit: 75, Flavor: "Frescoes tell a story long lost."},
		{Name: "Labyrinth", MinLen: 9, MaxLen: 12, MaxErrors: 5, TimeLimit: 70, Flavor: "Every turn could lead you astray."},
		{Name: "Catacombs", MinLen: 9, MaxLen: 12, MaxErrors: 5, TimeLimit: 70, Flavor: "The corridors smell of dust and ages."},
		{Name: "Fortress", MinLen: 10, MaxLen: 13, MaxErrors: 5, TimeLimit: 65, Flavor: "Massive gates defy your resolve."},
		{Name: "Observatory", MinLen: 10, MaxLen: 13, MaxErrors: 5, TimeLimit: 65, Flavor: "The stars seem to guide your steps."},
		{Name: "Clockworks", MinLen: 10, MaxLen: 14, MaxErrors: 5, TimeLimit: 60, Flavor: "Gears grind somewhere in the dark."},
		{Name: "Hall of Echoes", MinLen: 10, MaxLen: 14, MaxErrors: 5, TimeLimit: 60, Flavor: "Every word becomes riddle and clue."},
		{Name: "Outer Court", MinLen: 11, MaxLen: 15, MaxErrors: 5, TimeLimit: 55, Flavor: "The Citadel is one breath away."},
		{Name: "Citadel", MinLen: 12, MaxLen: 0, MaxErrors: 4, TimeLimit: 55, Flavor: "The heart of the mystery beats behind these gates."},
	}
}
