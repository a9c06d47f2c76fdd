// Package wayio reads source chains from GeoJSON and writes parallel copies
// back to GeoJSON.
//
// Each LineString feature is one way. Its properties become way tags,
// except for two reserved keys:
//
//	node_ids   array of integers, one vertex ID per coordinate
//	reference  true marks the reference way (the first way by default)
//
// Without node_ids, vertices with identical coordinates share an ID.
package wayio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	geojson "github.com/paulmach/go.geojson"

	parallel "github.com/gogpu/gg-parallel"
)

// Reserved feature properties.
const (
	PropNodeIDs   = "node_ids"
	PropReference = "reference"
)

var (
	// ErrNoWays is returned when a collection holds no LineString feature.
	ErrNoWays = errors.New("wayio: no LineString features")

	// ErrMultipleReferences is returned when more than one feature is
	// marked as the reference way.
	ErrMultipleReferences = errors.New("wayio: more than one reference way")
)

// FeatureError reports a feature that cannot be turned into a way.
type FeatureError struct {
	Index  int
	Reason string
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("wayio: feature %d: %s", e.Index, e.Reason)
}

// ReadChain decodes the GeoJSON file at path.
func ReadChain(path string) (parallel.SourceChain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return parallel.SourceChain{}, err
	}
	return DecodeChain(data)
}

// DecodeChain decodes a FeatureCollection into a SourceChain. Way IDs are
// taken from numeric feature IDs, or numbered from 1 in feature order.
func DecodeChain(data []byte) (parallel.SourceChain, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return parallel.SourceChain{}, fmt.Errorf("wayio: decode: %w", err)
	}

	ids := newCoordIDs()
	chain := parallel.SourceChain{}
	ref := -1
	for i, f := range fc.Features {
		if f.Geometry == nil || !f.Geometry.IsLineString() {
			parallel.Logger().Debug("wayio: skipping feature", "index", i)
			continue
		}
		w, isRef, err := decodeWay(i, f, ids)
		if err != nil {
			return parallel.SourceChain{}, err
		}
		if isRef {
			if ref >= 0 {
				return parallel.SourceChain{}, ErrMultipleReferences
			}
			ref = len(chain.Ways)
		}
		chain.Ways = append(chain.Ways, w)
	}
	if len(chain.Ways) == 0 {
		return parallel.SourceChain{}, ErrNoWays
	}
	chain.Ref = max(ref, 0)
	return chain, nil
}

func decodeWay(index int, f *geojson.Feature, ids *coordIDs) (parallel.Way, bool, error) {
	coords := f.Geometry.LineString
	w := parallel.Way{
		ID:       wayID(f.ID, index),
		Vertices: make([]parallel.Vertex, 0, len(coords)),
	}

	var nodeIDs []parallel.VertexID
	if raw, ok := f.Properties[PropNodeIDs]; ok {
		var err error
		if nodeIDs, err = vertexIDs(raw); err != nil {
			return parallel.Way{}, false, &FeatureError{Index: index, Reason: err.Error()}
		}
		if len(nodeIDs) != len(coords) {
			return parallel.Way{}, false, &FeatureError{
				Index:  index,
				Reason: fmt.Sprintf("%d node ids for %d coordinates", len(nodeIDs), len(coords)),
			}
		}
	}

	for i, c := range coords {
		if len(c) < 2 {
			return parallel.Way{}, false, &FeatureError{Index: index, Reason: "coordinate without x and y"}
		}
		p := parallel.Pt(c[0], c[1])
		id := ids.of(p)
		if nodeIDs != nil {
			id = nodeIDs[i]
		}
		w.Vertices = append(w.Vertices, parallel.Vertex{ID: id, Pos: p})
	}

	isRef := false
	for k, v := range f.Properties {
		switch k {
		case PropNodeIDs:
		case PropReference:
			b, ok := v.(bool)
			if !ok {
				return parallel.Way{}, false, &FeatureError{Index: index, Reason: "reference must be a boolean"}
			}
			isRef = b
		default:
			if w.Tags == nil {
				w.Tags = parallel.Tags{}
			}
			w.Tags[k] = tagValue(v)
		}
	}
	return w, isRef, nil
}

func wayID(id any, index int) parallel.WayID {
	switch v := id.(type) {
	case float64:
		if v == math.Trunc(v) {
			return parallel.WayID(v)
		}
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parallel.WayID(n)
		}
	}
	return parallel.WayID(index + 1)
}

func vertexIDs(raw any) ([]parallel.VertexID, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, errors.New("node_ids must be an array")
	}
	out := make([]parallel.VertexID, len(list))
	for i, v := range list {
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) {
			return nil, fmt.Errorf("node_ids[%d] is not an integer", i)
		}
		out[i] = parallel.VertexID(f)
	}
	return out, nil
}

func tagValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

// coordIDs assigns one negative ID per distinct coordinate, so generated
// IDs never collide with host IDs given through node_ids.
type coordIDs struct {
	ids map[parallel.Point]parallel.VertexID
}

func newCoordIDs() *coordIDs {
	return &coordIDs{ids: make(map[parallel.Point]parallel.VertexID)}
}

func (c *coordIDs) of(p parallel.Point) parallel.VertexID {
	if id, ok := c.ids[p]; ok {
		return id
	}
	id := parallel.VertexID(-len(c.ids) - 1)
	c.ids[p] = id
	return id
}

// EncodeCopy converts a copy into a FeatureCollection with one LineString
// per copied way. Way tags become properties and the source way ID
// becomes the feature ID.
func EncodeCopy(c *parallel.Copy) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, w := range c.Ways {
		coords := make([][]float64, 0, len(w.Nodes))
		for _, n := range w.Nodes {
			p := c.Nodes[n].Pos
			coords = append(coords, []float64{p.X, p.Y})
		}
		f := geojson.NewLineStringFeature(coords)
		f.ID = int64(w.Source)
		for k, v := range w.Tags {
			f.SetProperty(k, v)
		}
		fc.AddFeature(f)
	}
	return fc
}

// WriteCopy writes c as GeoJSON to w.
func WriteCopy(w io.Writer, c *parallel.Copy) error {
	data, err := EncodeCopy(c).MarshalJSON()
	if err != nil {
		return fmt.Errorf("wayio: encode: %w", err)
	}
	_, err = w.Write(data)
	return err
}
