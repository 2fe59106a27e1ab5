package driver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"joy/internal/ast"
	"joy/internal/diag"
	"joy/internal/observ"
	"joy/internal/project"
	"joy/internal/source"
	"joy/internal/trace"
)

// ParseDirResult is the outcome for one file of a directory run. Tree is nil
// when the file failed to load or the result came from the cache.
type ParseDirResult struct {
	Path   string
	FileID source.FileID
	Tree   *ast.Tree
	Bag    *diag.Bag
	Items  int
	Cached bool
}

// ParseDir parses every source file under dir concurrently. Results are
// ordered like the sorted file list regardless of scheduling.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ParseDirResult, error) {
	files, err := project.CollectSources(dir, opts.Extensions)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	span, ctx := trace.Start(ctx, trace.ScopeDriver, "parse_dir")
	span.WithExtra("files", fmt.Sprint(len(files)))
	defer span.End("")

	// Loading is sequential so the file set is read-only once workers start.
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			loadErrors[i] = loadErr
			fileID = fileSet.AddVirtual(path, nil)
		}
		fileIDs[i] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each worker owns results[i]; no locking needed.
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			started := time.Now()
			file := fileSet.Get(fileIDs[i])
			if loadErr, failed := loadErrors[i]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.FileError(diag.IOLoadFileError, file.ID, fmt.Sprintf("failed to load file: %v", loadErr)))
				results[i] = ParseDirResult{Path: path, FileID: file.ID, Bag: bag}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr, Elapsed: time.Since(started)})
				return nil
			}

			if res, ok := lookupCache(file, opts); ok {
				results[i] = res
				emit(opts.Progress, Event{File: path, Stage: StageCache, Status: StatusDone, Elapsed: time.Since(started)})
				return nil
			}

			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
			// Timings are a single-file feature; keep directory bags cacheable.
			fileOpts := opts
			fileOpts.Timings = false
			parsed, parseErr := parseFile(gctx, fileSet, file, fileOpts, observ.NewTimer())
			if parseErr != nil {
				emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusError, Err: parseErr, Elapsed: time.Since(started)})
				return parseErr
			}
			items := len(parsed.Tree.Items())
			results[i] = ParseDirResult{
				Path:   path,
				FileID: file.ID,
				Tree:   parsed.Tree,
				Bag:    parsed.Bag,
				Items:  items,
			}
			storeCache(file, items, parsed.Bag, opts)

			status := StatusDone
			if parsed.Bag.HasErrors() {
				status = StatusError
			}
			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: status, Elapsed: time.Since(started)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func lookupCache(file *source.File, opts Options) (ParseDirResult, bool) {
	if opts.Cache == nil {
		return ParseDirResult{}, false
	}
	var payload DiskPayload
	ok, err := opts.Cache.Get(cacheKey(file, opts), &payload)
	if err != nil || !ok || payload.ContentHash != file.Hash || !payload.valid() {
		return ParseDirResult{}, false
	}
	return ParseDirResult{
		Path:   file.Path,
		FileID: file.ID,
		Bag:    restoreBag(&payload, file.ID, opts.MaxDiagnostics),
		Items:  payload.Items,
		Cached: true,
	}, true
}

// storeCache is best effort; a failed write only costs a future re-parse.
func storeCache(file *source.File, items int, bag *diag.Bag, opts Options) {
	if opts.Cache == nil {
		return
	}
	_ = opts.Cache.Put(cacheKey(file, opts), toDiskPayload(file, items, bag))
}
