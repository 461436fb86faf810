package common

import (
	"encoding/json"
	"testing"
)

type doc struct {
	Expiration Optional[string] `json:"expiration,omitzero"`
}

func TestOptionalTriState(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantPresent bool
		wantNull    bool
		wantValue   string
	}{
		{name: "absent", in: `{}`},
		{name: "explicit null", in: `{"expiration":null}`, wantPresent: true, wantNull: true},
		{name: "value", in: `{"expiration":"2026-09-15"}`, wantPresent: true, wantValue: "2026-09-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d doc
			if err := json.Unmarshal([]byte(tt.in), &d); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			o := d.Expiration
			if o.Present != tt.wantPresent || o.Null != tt.wantNull || o.Value != tt.wantValue {
				t.Errorf("optional = %+v", o)
			}

			v, ok := o.Get()
			if wantOK := tt.wantPresent && !tt.wantNull; ok != wantOK || (ok && v != tt.wantValue) {
				t.Errorf("Get() = %q, %v", v, ok)
			}
		})
	}
}

func TestOptionalRoundTripsThroughOmitzero(t *testing.T) {
	for _, in := range []string{`{}`, `{"expiration":null}`, `{"expiration":"2026-09-15"}`} {
		var d doc
		if err := json.Unmarshal([]byte(in), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		out, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(out) != in {
			t.Errorf("round trip %s -> %s", in, out)
		}
	}
}
