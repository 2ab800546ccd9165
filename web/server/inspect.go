package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/df07/go-sphere-caster/pkg/core"
	"github.com/df07/go-sphere-caster/pkg/material"
	"github.com/df07/go-sphere-caster/pkg/renderer"
	"github.com/df07/go-sphere-caster/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit      bool       `json:"hit"`
	Distance float64    `json:"distance,omitempty"`
	Point    [3]float64 `json:"point"`
	Normal   [3]float64 `json:"normal"`
	Color    [3]float64 `json:"color"` // Diffuse color on a hit, background otherwise
	Hex      string     `json:"hex"`
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// handleInspect casts the primary ray of one pixel and reports what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	query := r.URL.Query()
	req, err := s.parseRenderRequest(query)
	if err != nil {
		s.sendJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	x, err := parseIntParam(query, "x", req.Width/2, 0, req.Width-1)
	if err != nil {
		s.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", req.Height/2, 0, req.Height-1)
	if err != nil {
		s.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := scene.ByName(req.Scene)
	if err != nil {
		s.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, req.CameraConfig(), nil)
	ray := raytracer.GetCamera().GetRay(x, y)

	response := InspectResponse{}
	if hit, isHit := sceneObj.Intersect(ray); isHit {
		response.Hit = true
		response.Distance = hit.T
		response.Point = toArray(hit.Point)
		response.Normal = toArray(hit.Normal)
		response.Color = toArray(hit.Material.DiffuseColor)
		response.Hex = hit.Material.Hex()
	} else {
		background := sceneObj.GetBackgroundColor()
		response.Color = toArray(background)
		response.Hex = material.NewMaterial(background).Hex()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
