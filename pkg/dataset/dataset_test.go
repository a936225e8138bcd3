package dataset_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SheLesTT/open-place-recognition/pkg/dataset"
)

func writePointCloud(t *testing.T, rows [][4]float32) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, row := range rows {
		for _, v := range row {
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, math.Float32bits(v)))
		}
	}
	return buf.Bytes()
}

func TestOpen(t *testing.T) {
	fs := memfs.New()
	index := "track,lidar_ts,front_cam_ts,back_cam_ts,northing,easting,in_query\n" +
		"00,1000,1001,1002,55.75,37.62,false\n" +
		"01,2000,2001,2002,55.76,37.63,false\n"
	require.NoError(t, util.WriteFile(fs, "campus/test.csv", []byte(index), 0o644))
	require.NoError(t, util.WriteFile(fs, "campus/train.csv", []byte(index), 0o644))

	t.Run("reads the subset index", func(t *testing.T) {
		ds, err := dataset.Open(fs, dataset.Config{DatasetRoot: "campus", Subset: "train"})
		require.NoError(t, err)

		require.Equal(t, 2, ds.Len())
		frame, err := ds.Frame(1)
		require.NoError(t, err)
		assert.Equal(t, "01", frame.Track)
		assert.Equal(t, 55.76, frame.Northing)
		assert.Equal(t, 37.63, frame.Easting)
		assert.False(t, frame.InQuery)
	})

	t.Run("every test frame is a query", func(t *testing.T) {
		ds, err := dataset.Open(fs, dataset.Config{DatasetRoot: "campus", Subset: "test"})
		require.NoError(t, err)
		assert.Len(t, ds.Queries(), 2)
	})

	t.Run("file paths follow the track layout", func(t *testing.T) {
		ds, err := dataset.Open(fs, dataset.Config{DatasetRoot: "campus"})
		require.NoError(t, err)
		frame, err := ds.Frame(0)
		require.NoError(t, err)

		assert.Equal(t, "campus/00/front_cam/1001.png", ds.ImagePath(frame))
		assert.Equal(t, "campus/00/lidar/1000.bin", ds.CloudPath(frame))
	})

	t.Run("semantic label paths", func(t *testing.T) {
		ds, err := dataset.Open(fs, dataset.Config{
			DatasetRoot: "campus",
			Modalities:  []string{"image", "cloud", "semantic"},
		})
		require.NoError(t, err)
		frame, err := ds.Frame(0)
		require.NoError(t, err)

		assert.Equal(t, "campus/00/labels/front_cam/1001.png", ds.SemanticFrontPath(frame))
		assert.Equal(t, "campus/00/labels/back_cam/1002.png", ds.SemanticBackPath(frame))
	})

	t.Run("missing index", func(t *testing.T) {
		_, err := dataset.Open(fs, dataset.Config{DatasetRoot: "campus", Subset: "val"})
		assert.ErrorContains(t, err, "val.csv")
	})

	t.Run("missing column", func(t *testing.T) {
		require.NoError(t, util.WriteFile(fs, "broken/test.csv", []byte("track,lidar_ts\n00,1\n"), 0o644))
		_, err := dataset.Open(fs, dataset.Config{DatasetRoot: "broken"})
		assert.ErrorContains(t, err, `missing required column "front_cam_ts"`)
	})

	t.Run("config validation", func(t *testing.T) {
		_, err := dataset.Open(fs, dataset.Config{DatasetRoot: "campus", Subset: "validation"})
		assert.ErrorContains(t, err, `unknown subset "validation"`)

		_, err = dataset.Open(fs, dataset.Config{DatasetRoot: "campus", Modalities: []string{"radar"}})
		assert.ErrorContains(t, err, `unknown modality "radar"`)

		_, err = dataset.Open(fs, dataset.Config{})
		assert.ErrorContains(t, err, "dataset_root")
	})
}

func TestLoadCloud(t *testing.T) {
	fs := memfs.New()
	index := "track,lidar_ts,front_cam_ts,back_cam_ts,northing,easting\n00,1000,1001,1002,55.75,37.62\n"
	require.NoError(t, util.WriteFile(fs, "campus/test.csv", []byte(index), 0o644))

	cloud := writePointCloud(t, [][4]float32{
		{1.0, 2.0, 0.5, 17},  // kept
		{1.6, 2.1, 0.6, 3},   // kept, neighboring voxel
		{150, 0, 0, 9},       // out of range
		{1.0, 2.0, 0.51, 11}, // same voxel as the first point, dropped
	})
	require.NoError(t, util.WriteFile(fs, "campus/00/lidar/1000.bin", cloud, 0o644))

	ds, err := dataset.Open(fs, dataset.Config{DatasetRoot: "campus"})
	require.NoError(t, err)
	frame, err := ds.Frame(0)
	require.NoError(t, err)

	points, err := ds.LoadCloud(frame)
	require.NoError(t, err)
	assert.Equal(t, []dataset.Point{
		{X: 1.0, Y: 2.0, Z: 0.5},
		{X: 1.6, Y: 2.1, Z: 0.6},
	}, points)
}

func TestReadPointCloud(t *testing.T) {
	t.Run("intensity is dropped", func(t *testing.T) {
		points, err := dataset.ReadPointCloud(bytes.NewReader(writePointCloud(t, [][4]float32{
			{3, -4, 5, 200},
		})))
		require.NoError(t, err)
		assert.Equal(t, []dataset.Point{{X: 3, Y: -4, Z: 5}}, points)
	})

	t.Run("range filter is inclusive at the limit", func(t *testing.T) {
		points, err := dataset.ReadPointCloud(bytes.NewReader(writePointCloud(t, [][4]float32{
			{100, -100, 100, 0},
			{100.5, 0, 0, 0},
		})))
		require.NoError(t, err)
		assert.Equal(t, []dataset.Point{{X: 100, Y: -100, Z: 100}}, points)
	})

	t.Run("truncated file", func(t *testing.T) {
		_, err := dataset.ReadPointCloud(bytes.NewReader([]byte{1, 2, 3}))
		assert.ErrorContains(t, err, "whole number")
	})
}

func TestQuantize(t *testing.T) {
	points := []dataset.Point{
		{X: 0.1, Y: 0.1, Z: 0.1},
		{X: 0.2, Y: 0.2, Z: 0.2}, // same 0.5m voxel
		{X: 0.7, Y: 0.1, Z: 0.1},
	}

	assert.Len(t, dataset.Quantize(points, 0.5), 2)
	assert.Equal(t, points, dataset.Quantize(points, 0), "non-positive size disables quantization")
}

func TestConfigApplyDefaults(t *testing.T) {
	var config dataset.Config
	config.ApplyDefaults()

	assert.Equal(t, "test", config.Subset)
	assert.Equal(t, []string{"image", "cloud"}, config.Modalities)
	assert.Equal(t, "front_cam", config.ImagesSubdir)
	assert.Equal(t, 0.5, config.MinkQuantizationSize)
	assert.Empty(t, config.SemanticFrontSubdir, "semantic defaults apply only when the modality is requested")

	semantic := dataset.Config{Modalities: []string{"semantic"}}
	semantic.ApplyDefaults()
	assert.Equal(t, "labels/front_cam", semantic.SemanticFrontSubdir)
	assert.Equal(t, "labels/back_cam", semantic.SemanticBackSubdir)
}
