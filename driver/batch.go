package driver

import (
	"fmt"
	"os"

	"github.com/f77sub/f77sub/utils"
)

// Report is the outcome of analyzing one file of a batch.
type Report struct {
	Path   string
	Result *Result
	Err    error
}

func (r Report) OK() bool {
	return r.Err == nil
}

// RunDir analyzes every source file under dir in path order.
// A failing file is recorded in its report and does not stop the batch;
// only a failure to list dir is returned as an error.
func (r *PassRunner) RunDir(dir string) ([]Report, error) {
	files, err := utils.FindSourceFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("find sources in %s: %w", dir, err)
	}
	r.logger.Debug("batch", "dir", dir, "files", len(files))

	reports := make([]Report, 0, len(files))
	for _, path := range files {
		reports = append(reports, r.RunFile(path))
	}

	return reports, nil
}

// RunFile reads and analyzes a single file, running the passes on success.
func (r *PassRunner) RunFile(path string) Report {
	source, err := os.ReadFile(path)
	if err != nil {
		return Report{Path: path, Err: err}
	}
	res, err := r.RunSource(string(source))

	return Report{Path: path, Result: res, Err: err}
}
