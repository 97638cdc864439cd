package dxf

import "github.com/chazu/pathdxf/pkg/geom"

// WorkspaceSize is the side length of the square logical workspace that
// imported drawings are centred on.
const WorkspaceSize = 50.0

// WorkspaceCenter is the centre of the logical workspace.
var WorkspaceCenter = geom.Pt(WorkspaceSize/2, WorkspaceSize/2)

// centerOnWorkspace translates every entity by one shared offset so the
// bounding box of the whole drawing is centred on WorkspaceCenter. The
// drawing moves as a rigid unit; entities keep their relative positions.
func centerOnWorkspace(entities []rawEntity) []rawEntity {
	var ext geom.Extent
	for _, e := range entities {
		ext.IncludeAll(e.points)
	}
	if ext.Empty() {
		return entities
	}

	offset := WorkspaceCenter.Sub(ext.Center())

	out := make([]rawEntity, len(entities))
	for i, e := range entities {
		pts := make([]geom.Point, len(e.points))
		for j, p := range e.points {
			pts[j] = p.Add(offset)
		}
		out[i] = rawEntity{points: pts, closed: e.closed, layer: e.layer}
	}
	return out
}
