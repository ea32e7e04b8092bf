package seed

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// File names inside a seed directory.
const (
	StakeholdersFile = "stakeholders.csv"
	ProjectsFile     = "projects.csv"
	ReportsFile      = "reports.csv"
	TransactionsFile = "transactions.csv"
)

// Load reads every seed file present in dir. Missing files leave the
// matching collection empty; a missing dir yields empty Data.
func Load(dir string) (Data, error) {
	var data Data
	var err error

	if data.Stakeholders, err = loadFile(dir, StakeholdersFile, ReadStakeholders); err != nil {
		return Data{}, err
	}
	if data.Projects, err = loadFile(dir, ProjectsFile, ReadProjects); err != nil {
		return Data{}, err
	}
	if data.Reports, err = loadFile(dir, ReportsFile, ReadReports); err != nil {
		return Data{}, err
	}
	if data.Transactions, err = loadFile(dir, TransactionsFile, ReadTransactions); err != nil {
		return Data{}, err
	}
	return data, nil
}

func loadFile[T any](dir, name string, read func(io.Reader) ([]T, error)) ([]T, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// Save writes all four seed files into dir, creating it if needed.
func Save(dir string, data Data) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating seed dir: %w", err)
	}
	if err := saveFile(dir, StakeholdersFile, func(w io.Writer) error { return WriteStakeholders(w, data.Stakeholders) }); err != nil {
		return err
	}
	if err := saveFile(dir, ProjectsFile, func(w io.Writer) error { return WriteProjects(w, data.Projects) }); err != nil {
		return err
	}
	if err := saveFile(dir, ReportsFile, func(w io.Writer) error { return WriteReports(w, data.Reports) }); err != nil {
		return err
	}
	return saveFile(dir, TransactionsFile, func(w io.Writer) error { return WriteTransactions(w, data.Transactions) })
}

func saveFile(dir, name string, write func(io.Writer) error) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
