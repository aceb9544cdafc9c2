package user

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Dataset is the initial data the surrounding application supplies:
// the users to list and their like counts.
type Dataset struct {
	Users []User        `yaml:"users"`
	Likes map[int64]int `yaml:"likes"`
}

// Validate reports every invalid user and every duplicated identifier.
func (d Dataset) Validate() error {
	var errs error
	seen := make(map[int64]int, len(d.Users))
	for i, u := range d.Users {
		if err := u.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("users[%d]: %w", i, err))
		}
		if u.ID == nil {
			continue
		}
		if j, ok := seen[*u.ID]; ok {
			errs = multierr.Append(errs, fmt.Errorf("users[%d]: %w: %d also used by users[%d]", i, ErrDuplicateID, *u.ID, j))
			continue
		}
		seen[*u.ID] = i
	}
	return errs
}

// LoadDataset decodes and validates a YAML dataset.
func LoadDataset(r io.Reader) (Dataset, error) {
	var d Dataset
	if err := yaml.NewDecoder(r).Decode(&d); err != nil && err != io.EOF {
		return Dataset{}, fmt.Errorf("failed to decode dataset: %w", err)
	}
	if d.Likes == nil {
		d.Likes = map[int64]int{}
	}
	if err := d.Validate(); err != nil {
		return Dataset{}, err
	}
	return d, nil
}

// LoadDatasetFile is LoadDataset for a file path.
func LoadDatasetFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return LoadDataset(f)
}
