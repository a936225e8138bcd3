package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"strconv"

	"github.com/go-git/go-billy/v5"
)

// Frame is one indexed recording position: where the platform was and
// which sensor captures belong to it.
type Frame struct {
	Track      string
	LidarTS    string
	FrontCamTS string
	BackCamTS  string

	// Northing and Easting are the UTM coordinates of the frame.
	Northing float64
	Easting  float64

	// InQuery marks frames used as queries rather than database entries
	// during evaluation.
	InQuery bool
}

// Dataset is an opened track dataset: a frame index over a filesystem.
type Dataset struct {
	fs     billy.Filesystem
	config Config
	frames []Frame
}

// Open reads the subset index (<dataset_root>/<subset>.csv) and returns
// a dataset over it. For the test subset every frame is treated as a
// query, matching how evaluation downstream expects that index.
func Open(fs billy.Filesystem, config Config) (*Dataset, error) {
	config.ApplyDefaults()
	if errs := config.Validate(); len(errs) > 0 {
		return nil, errs[0]
	}

	indexPath := path.Join(config.DatasetRoot, config.Subset+".csv")
	f, err := fs.Open(indexPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open dataset index %q: %w", indexPath, err)
	}
	defer closeAndIgnoreError(f)

	frames, err := readIndex(f)
	if err != nil {
		return nil, fmt.Errorf("unable to read dataset index %q: %w", indexPath, err)
	}

	if config.Subset == SubsetTest {
		for i := range frames {
			frames[i].InQuery = true
		}
	}

	return &Dataset{fs: fs, config: config, frames: frames}, nil
}

func (d *Dataset) Config() Config { return d.config }

func (d *Dataset) Len() int { return len(d.frames) }

func (d *Dataset) Frame(i int) (Frame, error) {
	if i < 0 || i >= len(d.frames) {
		return Frame{}, fmt.Errorf("frame index %d out of range [0, %d)", i, len(d.frames))
	}
	return d.frames[i], nil
}

// ImagePath is the camera frame for an indexed position.
func (d *Dataset) ImagePath(f Frame) string {
	return path.Join(d.config.DatasetRoot, f.Track, d.config.ImagesSubdir, f.FrontCamTS+".png")
}

// SemanticFrontPath and SemanticBackPath are the per-camera label maps.
func (d *Dataset) SemanticFrontPath(f Frame) string {
	return path.Join(d.config.DatasetRoot, f.Track, d.config.SemanticFrontSubdir, f.FrontCamTS+".png")
}

func (d *Dataset) SemanticBackPath(f Frame) string {
	return path.Join(d.config.DatasetRoot, f.Track, d.config.SemanticBackSubdir, f.BackCamTS+".png")
}

// CloudPath is the lidar sweep for an indexed position.
func (d *Dataset) CloudPath(f Frame) string {
	return path.Join(d.config.DatasetRoot, f.Track, cloudsSubdir, f.LidarTS+".bin")
}

// LoadCloud reads, range-filters, and quantizes the point cloud of a
// frame using the configured voxel size.
func (d *Dataset) LoadCloud(f Frame) ([]Point, error) {
	cloudPath := d.CloudPath(f)
	file, err := d.fs.Open(cloudPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open point cloud %q: %w", cloudPath, err)
	}
	defer closeAndIgnoreError(file)

	points, err := ReadPointCloud(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read point cloud %q: %w", cloudPath, err)
	}
	return Quantize(points, d.config.MinkQuantizationSize), nil
}

// Queries returns the frames flagged as evaluation queries.
func (d *Dataset) Queries() []Frame {
	var queries []Frame
	for _, f := range d.frames {
		if f.InQuery {
			queries = append(queries, f)
		}
	}
	return queries
}

func readIndex(r io.Reader) ([]Frame, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("missing header row: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"track", "lidar_ts", "front_cam_ts", "back_cam_ts", "northing", "easting"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var frames []Frame
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		field := func(name string) string { return record[columns[name]] }

		northing, err := strconv.ParseFloat(field("northing"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid northing: %w", row, err)
		}
		easting, err := strconv.ParseFloat(field("easting"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid easting: %w", row, err)
		}

		frame := Frame{
			Track:      field("track"),
			LidarTS:    field("lidar_ts"),
			FrontCamTS: field("front_cam_ts"),
			BackCamTS:  field("back_cam_ts"),
			Northing:   northing,
			Easting:    easting,
		}
		if i, ok := columns["in_query"]; ok {
			frame.InQuery, err = strconv.ParseBool(record[i])
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid in_query: %w", row, err)
			}
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }
