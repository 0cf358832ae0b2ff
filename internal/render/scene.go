package render

import "smartroad/internal/intersection"

// zoneCell is the pixel size of one cell of the 4x4 conflict grid.
const zoneCell = float32(intersection.IntersectionRectLen) / 4

// DrawZones renders the 4x4 conflict grid, colored by reservation status.
func (r *Renderer) DrawZones(zones map[intersection.ZoneIndex]intersection.ZoneStatus) {
	originX := float32(intersection.IntersectionStartX)
	originY := float32(intersection.IntersectionStartY)

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			status := zones[intersection.ZoneIndex{Row: row, Col: col}]
			color := ColorZoneFree
			switch status {
			case intersection.ZoneReservedNotActive:
				color = ColorZoneReservedWaiting
			case intersection.ZoneActive:
				color = ColorZoneActive
			}
			x := originX + float32(col)*zoneCell
			y := originY + float32(row)*zoneCell
			r.DrawQuad(x, y, zoneCell-1, zoneCell-1, color)
		}
	}
}

// DrawVehicles renders every live vehicle's bounding box, colored by state.
func (r *Renderer) DrawVehicles(snap intersection.Snapshot) {
	for _, v := range snap.Vehicles {
		color := ColorVehicleNormal
		switch {
		case v.Collided:
			color = ColorVehicleCollided
		case v.Braking:
			color = ColorVehicleBraking
		}
		r.DrawQuad(float32(v.Box.X), float32(v.Box.Y), float32(v.Box.W), float32(v.Box.H), color)
	}
}
