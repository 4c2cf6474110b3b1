package item

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/osse101/BrandishEconomy_Go/internal/logger"
	"github.com/osse101/BrandishEconomy_Go/internal/repository"
)

//go:embed catalog.schema.json
var catalogSchema []byte

const catalogSchemaURL = "catalog.schema.json"

// CatalogFile is the on-disk item catalog
type CatalogFile struct {
	Version string `json:"version"`
	Items   []Def  `json:"items"`
}

// Def describes one catalog item
type Def struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SyncResult reports what a catalog sync changed
type SyncResult struct {
	Inserted int
	Updated  int
	Skipped  int
}

// Loader reads an item catalog file and reconciles it with storage
type Loader interface {
	Load(path string) (*CatalogFile, error)
	Validate(cfg *CatalogFile) error
	Sync(ctx context.Context, cfg *CatalogFile, repo repository.Item) (*SyncResult, error)
}

type loader struct {
	schema *jsonschema.Schema
}

// NewLoader compiles the embedded catalog schema
func NewLoader() (Loader, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(catalogSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(catalogSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add catalog schema: %w", err)
	}
	schema, err := compiler.Compile(catalogSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile catalog schema: %w", err)
	}
	return &loader{schema: schema}, nil
}

// Load reads the file, checks it against the schema and decodes it
func (l *loader) Load(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read item catalog %s: %w", path, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse item catalog %s: %w", path, err)
	}
	if err := l.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("item catalog %s does not match schema: %w", path, formatSchemaError(err))
	}

	var cfg CatalogFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode item catalog %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate enforces the rules the schema cannot express
func (l *loader) Validate(cfg *CatalogFile) error {
	if cfg == nil {
		return errors.New("catalog is nil")
	}

	seen := make(map[string]bool, len(cfg.Items))
	for i, def := range cfg.Items {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return fmt.Errorf("item at index %d: %s", i, ErrMsgEmptyName)
		}
		if seen[name] {
			return fmt.Errorf("duplicate item name: %s", name)
		}
		seen[name] = true
	}
	return nil
}

// Sync inserts catalog items missing from storage and updates changed descriptions.
// Items in storage but not in the file are left alone.
func (l *loader) Sync(ctx context.Context, cfg *CatalogFile, repo repository.Item) (*SyncResult, error) {
	existing, err := repo.GetItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	byName := make(map[string]int, len(existing))
	descByName := make(map[string]string, len(existing))
	for _, it := range existing {
		byName[it.Name] = it.ID
		descByName[it.Name] = it.Description
	}

	log := logger.FromContext(ctx)
	result := &SyncResult{}
	for _, def := range cfg.Items {
		name := strings.TrimSpace(def.Name)
		id, ok := byName[name]
		switch {
		case !ok:
			newID, err := repo.CreateItem(ctx, name, def.Description)
			if err != nil {
				return result, fmt.Errorf("failed to insert item %s: %w", name, err)
			}
			log.Debug(LogMsgCatalogItemInserted, logger.AttrKeyItemID, newID, "name", name)
			result.Inserted++
		case descByName[name] != def.Description:
			desc := def.Description
			if _, err := repo.UpdateItem(ctx, id, nil, &desc); err != nil {
				return result, fmt.Errorf("failed to update item %s: %w", name, err)
			}
			log.Debug(LogMsgCatalogItemUpdated, logger.AttrKeyItemID, id, "name", name)
			result.Updated++
		default:
			result.Skipped++
		}
	}
	return result, nil
}

// formatSchemaError flattens nested schema causes into one line per failing location
func formatSchemaError(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	var msgs []string
	var walk func(v *jsonschema.ValidationError)
	walk = func(v *jsonschema.ValidationError) {
		if len(v.Causes) == 0 {
			msgs = append(msgs, fmt.Sprintf("/%s: %s", strings.Join(v.InstanceLocation, "/"), v.Error()))
			return
		}
		for _, c := range v.Causes {
			walk(c)
		}
	}
	walk(verr)
	return errors.New(strings.Join(msgs, "; "))
}
