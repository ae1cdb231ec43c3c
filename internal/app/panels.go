package app

import (
	"fmt"
	"log/slog"

	"github.com/llehouerou/panes/internal/config"
	"github.com/llehouerou/panes/internal/group"
	"github.com/llehouerou/panes/internal/units"
)

// Mount mounts every declared panel on g in one batch.
func Mount(g *group.Group, panels []config.PanelConfig, logger *slog.Logger) error {
	cfgs := make([]group.PanelConfig, 0, len(panels))
	for i, p := range panels {
		cfg, err := groupPanel(p, logger)
		if err != nil {
			return fmt.Errorf("panels[%d]: %w", i, err)
		}
		cfgs = append(cfgs, cfg)
	}
	return g.AddPanels(cfgs...)
}

func groupPanel(p config.PanelConfig, logger *slog.Logger) (group.PanelConfig, error) {
	c, err := p.Constraints()
	if err != nil {
		return group.PanelConfig{}, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return group.PanelConfig{
		ID:          p.ID,
		Order:       p.Order,
		Constraints: c,
		Disabled:    p.Disabled,
		OnCollapse: func(ch group.SizeChange) {
			logger.Debug("panel collapsed", "panel", ch.PanelID, "from", units.Format(ch.PreviousPct))
		},
		OnExpand: func(ch group.SizeChange) {
			logger.Debug("panel expanded", "panel", ch.PanelID, "to", units.Format(ch.CurrentPct))
		},
	}, nil
}
