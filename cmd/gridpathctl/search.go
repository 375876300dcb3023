package main

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/pathfinder"
	"github.com/katalvlaran/gridpath/search"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type searchResultJSON struct {
	Status     string         `json:"status"`
	Path       []positionJSON `json:"path,omitempty"`
	Ops        uint32         `json:"ops"`
	Cost       uint32         `json:"cost"`
	Incomplete bool           `json:"incomplete"`
}

type positionJSON struct {
	Xx uint32 `json:"xx"`
	Yy uint32 `json:"yy"`
}

func newSearchCommand(v *viper.Viper) *cobra.Command {
	var terrainPath, originFlag, goalFlag string
	var goalRange uint32
	var flee bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one search against a terrain pack and print the path as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			bindSearchFlags(v, cmd)

			entries, err := loadTerrainPack(terrainPath)
			if err != nil {
				return err
			}

			finder := pathfinder.New(nil, pathfinder.DefaultPoolWidth, nil)
			if err := finder.LoadTerrain(entries); err != nil {
				return fmt.Errorf("gridpathctl: %w", err)
			}

			origin, err := parsePosition(originFlag)
			if err != nil {
				return fmt.Errorf("gridpathctl: --origin: %w", err)
			}
			goalPos, err := parsePosition(goalFlag)
			if err != nil {
				return fmt.Errorf("gridpathctl: --goal: %w", err)
			}

			maxCost := v.GetUint32("max-cost")
			if maxCost == 0 {
				maxCost = ^uint32(0)
			}
			opts := []search.Option{
				search.WithPlainCost(v.GetUint32("plain-cost")),
				search.WithSwampCost(v.GetUint32("swamp-cost")),
				search.WithMaxRooms(v.GetInt("max-rooms")),
				search.WithMaxOps(v.GetUint32("max-ops")),
				search.WithMaxCost(maxCost),
				search.WithHeuristicWeight(v.GetFloat64("heuristic-weight")),
				search.WithFlee(flee),
			}

			outcome, err := finder.Search(cmd.Context(), origin, []search.Goal{{Pos: goalPos, Range: goalRange}}, opts...)
			if err != nil {
				return fmt.Errorf("gridpathctl: %w", err)
			}

			return printSearchResult(cmd, outcome.Result)
		},
	}

	cmd.Flags().StringVar(&terrainPath, "terrain", "", "path to a terrain pack JSON file (required)")
	cmd.Flags().StringVar(&originFlag, "origin", "", "origin position as xx,yy (required)")
	cmd.Flags().StringVar(&goalFlag, "goal", "", "goal position as xx,yy (required)")
	cmd.Flags().Uint32Var(&goalRange, "goal-range", 0, "Chebyshev range around --goal that counts as arrival")
	cmd.Flags().BoolVar(&flee, "flee", false, "search away from the goal instead of towards it")
	cmd.Flags().Uint32("plain-cost", 0, "override the configured plain tile cost")
	cmd.Flags().Uint32("swamp-cost", 0, "override the configured swamp tile cost")
	cmd.Flags().Int("max-rooms", 0, "override the configured room budget")
	cmd.Flags().Uint32("max-ops", 0, "override the configured ops budget")
	cmd.Flags().Uint32("max-cost", 0, "override the configured cost budget (0 = unbounded)")
	cmd.Flags().Float64("heuristic-weight", 0, "override the configured heuristic weight")
	cmd.Flags().BoolVar(&flee, "flee-mode", false, "alias of --flee")
	_ = cmd.MarkFlagRequired("terrain")
	_ = cmd.MarkFlagRequired("origin")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

// bindSearchFlags lets any explicitly-set flag override the viper-resolved
// config/env default for the same key, without clobbering the default when
// the flag was left at its zero value.
func bindSearchFlags(v *viper.Viper, cmd *cobra.Command) {
	for _, name := range []string{"plain-cost", "swamp-cost", "max-rooms", "max-ops", "max-cost", "heuristic-weight"} {
		if cmd.Flags().Changed(name) {
			_ = v.BindPFlag(name, cmd.Flags().Lookup(name))
		}
	}
}

func parsePosition(raw string) (coord.WorldPosition, error) {
	var x, y uint32
	if _, err := fmt.Sscanf(raw, "%d,%d", &x, &y); err != nil {
		return coord.WorldPosition{}, fmt.Errorf("expected xx,yy, got %q: %w", raw, err)
	}

	return coord.WorldPosition{Xx: x, Yy: y}, nil
}

func printSearchResult(cmd *cobra.Command, result search.Result) error {
	out := searchResultJSON{
		Ops:        result.Ops,
		Cost:       result.Cost,
		Incomplete: result.Incomplete,
	}
	switch result.Status {
	case search.StatusOK:
		out.Status = "ok"
	case search.StatusUndefined:
		out.Status = "undefined"
	case search.StatusOriginInaccessible:
		out.Status = "origin_inaccessible"
	}
	for _, p := range result.Path {
		out.Path = append(out.Path, positionJSON{Xx: p.Xx, Yy: p.Yy})
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

	return err
}
