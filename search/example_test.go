package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/terrain"
)

// ExampleEngine_Search finds a straight diagonal path across an empty room.
func ExampleEngine_Search() {
	var bits [terrain.BytesPerRoom]byte
	reg := terrain.NewRegistry()
	room := coord.RoomLocation{Xx: 10, Yy: 10}
	if err := reg.LoadTerrain([]terrain.Entry{{Room: room, Bits: bits}}); err != nil {
		panic(err)
	}

	origin := coord.WorldPosition{Xx: 10*coord.RoomSize + 20, Yy: 10*coord.RoomSize + 20}
	goal := coord.WorldPosition{Xx: 10*coord.RoomSize + 25, Yy: 10*coord.RoomSize + 25}

	e := search.NewEngine(reg, nil)
	result, err := e.Search(origin, []search.Goal{{Pos: goal, Range: 0}})
	if err != nil {
		panic(err)
	}

	fmt.Println("status:", result.Status)
	fmt.Println("cost:", result.Cost)
	fmt.Println("steps:", len(result.Path))
	fmt.Println("first step is destination:", result.Path[0] == goal)

	// Output:
	// status: 0
	// cost: 5
	// steps: 5
	// first step is destination: true
}
