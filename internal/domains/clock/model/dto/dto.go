package dto

import (
	"time"
	"tzdate/shared/constant"
	"tzdate/shared/timezone"
)

type ConvertRequest struct {
	Time   string `json:"time" validate:"required,max=64"`
	Layout string `json:"layout" validate:"omitempty,layout"`
	From   string `json:"from" validate:"omitempty,timezone"`
	To     string `json:"to" validate:"required,timezone"`
}

// GoLayout returns the reference layout, RFC3339 when none was named.
func (c *ConvertRequest) GoLayout() string {
	return goLayout(c.Layout)
}

type ParseRequest struct {
	Value  string `json:"value" validate:"required,max=64"`
	Layout string `json:"layout" validate:"required,layout"`
	Zone   string `json:"zone" validate:"omitempty,timezone"`
}

func (p *ParseRequest) GoLayout() string {
	return goLayout(p.Layout)
}

func goLayout(name string) string {
	if layout, ok := constant.Layouts[name]; ok {
		return layout
	}

	return constant.DateFormat
}

type InstantResponse struct {
	Time          string `json:"time"`
	Unix          int64  `json:"unix"`
	Zone          string `json:"zone"`
	Abbreviation  string `json:"abbreviation"`
	Offset        string `json:"offset"`
	OffsetSeconds int    `json:"offset_seconds"`
	DST           bool   `json:"dst"`
}

func (r *InstantResponse) FromInstant(instant timezone.Instant) {
	r.Time = instant.Time.Format(time.RFC3339Nano)
	r.Unix = instant.Time.Unix()
	r.Zone = instant.Zone
	r.Abbreviation = instant.Abbreviation
	r.Offset = instant.Offset
	r.OffsetSeconds = instant.OffsetSeconds
	r.DST = instant.DST
}

type ConvertResponse struct {
	From InstantResponse `json:"from"`
	To   InstantResponse `json:"to"`
}

type ZoneResponse struct {
	InstantResponse
	Default bool `json:"default"`
}
