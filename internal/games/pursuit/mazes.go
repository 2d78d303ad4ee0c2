package pursuit

import "github.com/vovakirdan/tui-pursuit/internal/registry"

// Built-in mazes, registered in campaign order.
func init() {
	registry.Register(registry.Definition{
		ID:    "crossroads",
		Title: "Crossroads",
		Order: 1,
		Layout: []string{
			"#######.#######",
			"#o....#.#....o#",
			"#.###.#.#.###.#",
			"#.............#",
			"###.##.G.##.###",
			" ...#.G G.#... ",
			"###.##.#.##.###",
			"#......P......#",
			"#.###.#.#.###.#",
			"#o....#.#....o#",
			"#######.#######",
		},
	})
	registry.Register(registry.Definition{
		ID:    "classic",
		Title: "Classic",
		Order: 2,
		Layout: []string{
			"###################",
			"#o.......#.......o#",
			"#.##.###.#.###.##.#",
			"#.................#",
			"#.##.#.#####.#.##.#",
			"#....#...#...#....#",
			"####.### # ###.####",
			"   #.#   G   #.#   ",
			"####.# ##### #.####",
			"    .  G G G  .    ",
			"####.# ##### #.####",
			"   #.#       #.#   ",
			"####.# ##### #.####",
			"#........#........#",
			"#.##.###.#.###.##.#",
			"#o.#.....P.....#.o#",
			"##.#.#.#####.#.#.##",
			"#....#...#...#....#",
			"#.######.#.######.#",
			"#.................#",
			"###################",
		},
	})
	registry.Register(registry.Definition{
		ID:    "arena",
		Title: "Arena",
		Order: 3,
		Layout: []string{
			"#######################",
			"#o.........#.........o#",
			"#.###.####.#.####.###.#",
			"#.....................#",
			"#.###.#.#######.#.###.#",
			"#.....#....G....#.....#",
			"#####.####.#.####.#####",
			"    ..#..G . G..#..    ",
			"#####.#.#######.#.#####",
			"#.........P...........#",
			"#.###.###.###.###.###.#",
			"#o..#.....#G#.....#..o#",
			"###.#.###.#.#.###.#.###",
			"#.....................#",
			"#######################",
		},
	})
}
