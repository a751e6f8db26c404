// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package persist implements the JSON interchange document of spec.md §6:
// a flat, presentation-layer encoding of a model.Model whose field names
// mirror the input boundary (joint_number, support_code, beam_number,
// start_joint_number, ...) rather than Go's internal struct layout,
// following inp/sim.go's ReadSim/GetInfo pattern of a plain struct decoded
// with encoding/json and read/written through gosl/io.
package persist

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/planarframe/model"
)

// JointDoc is one joint's interchange record.
type JointDoc struct {
	JointNumber int     `json:"joint_number"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	SupportCode string  `json:"support_code"` // "free" | "hinged" | "fixed" | "glided" | "roller_x" | "roller_y" | "roller_x_hinge"
}

// MemberDoc is one member's interchange record.
type MemberDoc struct {
	BeamNumber       int     `json:"beam_number"`
	StartJointNumber int     `json:"start_joint_number"`
	EndJointNumber   int     `json:"end_joint_number"`
	A                float64 `json:"A"`
	E                float64 `json:"E"`
	I                float64 `json:"I"`
	Rho              float64 `json:"rho"`
}

// LoadDoc is one load's interchange record. For a point load (kind="PL"),
// D1 is the distance from the start joint and D2 is omitted. For a
// distributed load (kind="UDL"), D1 and D2 bound the loaded span.
type LoadDoc struct {
	Kind      string  `json:"kind"` // "PL" | "UDL"
	BeamNumber int    `json:"beam_number"`
	Magnitude float64 `json:"magnitude"`
	D1        float64 `json:"d1"`
	D2        float64 `json:"d2,omitempty"`
}

// Document is the full interchange document for one model, round-trippable
// through ToModel/FromModel without loss.
type Document struct {
	Joints  []JointDoc  `json:"joints"`
	Members []MemberDoc `json:"members"`
	Loads   []LoadDoc   `json:"loads"`
}

var supportNames = map[model.SupportCode]string{
	model.RigidJoint:        "free",
	model.HingedSupport:     "hinged",
	model.FixedSupport:      "fixed",
	model.GlidedSupport:     "glided",
	model.RollerXPlane:      "roller_x",
	model.RollerYPlane:      "roller_y",
	model.RollerXPlaneHinge: "roller_x_hinge",
}

var supportCodes = map[string]model.SupportCode{
	"free":           model.RigidJoint,
	"hinged":         model.HingedSupport,
	"fixed":          model.FixedSupport,
	"glided":         model.GlidedSupport,
	"roller_x":       model.RollerXPlane,
	"roller_y":       model.RollerYPlane,
	"roller_x_hinge": model.RollerXPlaneHinge,
}

var loadKindNames = map[model.LoadKind]string{
	model.PL:  "PL",
	model.UDL: "UDL",
}

var loadKindCodes = map[string]model.LoadKind{
	"PL":  model.PL,
	"UDL": model.UDL,
}

// FromModel converts a model.Model into its interchange Document.
func FromModel(mdl *model.Model) (*Document, error) {
	doc := &Document{
		Joints:  make([]JointDoc, len(mdl.Joints)),
		Members: make([]MemberDoc, len(mdl.Members)),
		Loads:   make([]LoadDoc, len(mdl.Loads)),
	}
	for i, j := range mdl.Joints {
		code, ok := supportNames[j.Support]
		if !ok {
			return nil, chk.Err("persist: joint %d has unknown support code %d", j.Number, j.Support)
		}
		doc.Joints[i] = JointDoc{JointNumber: j.Number, X: j.X, Y: j.Y, SupportCode: code}
	}
	for i, m := range mdl.Members {
		doc.Members[i] = MemberDoc{
			BeamNumber: m.Beam, StartJointNumber: m.StartJ, EndJointNumber: m.EndJ,
			A: m.A, E: m.E, I: m.I, Rho: m.Rho,
		}
	}
	for i, ld := range mdl.Loads {
		kind, ok := loadKindNames[ld.Kind]
		if !ok {
			return nil, chk.Err("persist: load %d has unknown kind %d", i, ld.Kind)
		}
		doc.Loads[i] = LoadDoc{Kind: kind, BeamNumber: ld.Beam, Magnitude: ld.Magnitude, D1: ld.D1, D2: ld.D2}
	}
	return doc, nil
}

// ToModel converts an interchange Document into a model.Model. The result
// is not validated; call Validate on the returned model before analysis.
func ToModel(doc *Document) (*model.Model, error) {
	mdl := &model.Model{
		Joints:  make([]model.Joint, len(doc.Joints)),
		Members: make([]model.Member, len(doc.Members)),
		Loads:   make([]model.Load, len(doc.Loads)),
	}
	for i, j := range doc.Joints {
		code, ok := supportCodes[j.SupportCode]
		if !ok {
			return nil, chk.Err("persist: joint %d has unknown support_code %q", j.JointNumber, j.SupportCode)
		}
		mdl.Joints[i] = model.Joint{Number: j.JointNumber, X: j.X, Y: j.Y, Support: code}
	}
	for i, m := range doc.Members {
		mdl.Members[i] = model.Member{
			Beam: m.BeamNumber, StartJ: m.StartJointNumber, EndJ: m.EndJointNumber,
			A: m.A, E: m.E, I: m.I, Rho: m.Rho,
		}
	}
	for i, ld := range doc.Loads {
		kind, ok := loadKindCodes[ld.Kind]
		if !ok {
			return nil, chk.Err("persist: load %d has unknown kind %q", i, ld.Kind)
		}
		mdl.Loads[i] = model.Load{Kind: kind, Beam: ld.BeamNumber, Magnitude: ld.Magnitude, D1: ld.D1, D2: ld.D2}
	}
	return mdl, nil
}

// Load reads a model from a JSON document at path, in the manner of
// inp/sim.go's ReadSim.
func Load(path string) (*model.Model, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("persist: cannot read %q: %v", path, err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, chk.Err("persist: cannot unmarshal %q: %v", path, err)
	}
	return ToModel(&doc)
}

// Save writes mdl as an indented JSON document to path, in the manner of
// inp/sim.go's GetInfo/MarshalIndent.
func Save(path string, mdl *model.Model) error {
	doc, err := FromModel(mdl)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return chk.Err("persist: cannot marshal document: %v", err)
	}
	dir, fn := filepath.Split(path)
	io.WriteFileSD(dir, fn, string(b))
	return nil
}
