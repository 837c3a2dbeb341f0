// Package seed provides the default vocabulary loaded when nothing has been
// saved yet.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/mrlokans/wordbank/internal/entities"
)

//go:embed assets
var embeddedAssets embed.FS

const defaultDataset = "assets/default.json"

// Default returns the embedded default dataset.
func Default() (entities.Snapshot, error) {
	data, err := embeddedAssets.ReadFile(defaultDataset)
	if err != nil {
		return entities.Snapshot{}, fmt.Errorf("read embedded dataset: %w", err)
	}

	var snap entities.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return entities.Snapshot{}, fmt.Errorf("decode embedded dataset: %w", err)
	}
	return snap, nil
}

// HasDefault returns true if the embedded dataset is available.
func HasDefault() bool {
	_, err := embeddedAssets.ReadFile(defaultDataset)
	return err == nil
}
