package georand

import "testing"

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()
	if p.MaxPolygonsCount != 60 {
		t.Errorf("MaxPolygonsCount = %d, want 60", p.MaxPolygonsCount)
	}
	if p.MaxPolygonVerticesCount != 7 {
		t.Errorf("MaxPolygonVerticesCount = %d, want 7", p.MaxPolygonVerticesCount)
	}
	if p.MaxCollisionsCount == nil || *p.MaxCollisionsCount != 100 {
		t.Errorf("MaxCollisionsCount = %v, want 100", p.MaxCollisionsCount)
	}
	if p.MinX != 0 || p.MinY != 0 || p.MaxX != 100 || p.MaxY != 100 {
		t.Errorf("region = [%v,%v,%v,%v], want [0,0,100,100]", p.MinX, p.MinY, p.MaxX, p.MaxY)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default parameters do not validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		params  Parameters
		wantErr bool
	}{
		{"valid", Parameters{MaxPolygonVerticesCount: 4, MaxX: 1, MaxY: 1}, false},
		{"x range empty", Parameters{MaxPolygonVerticesCount: 4, MinX: 1, MaxX: 1, MaxY: 1}, true},
		{"x range inverted", Parameters{MaxPolygonVerticesCount: 4, MinX: 2, MaxX: 1, MaxY: 1}, true},
		{"y range empty", Parameters{MaxPolygonVerticesCount: 4, MaxX: 1, MinY: 1, MaxY: 1}, true},
		{"vertex range empty", Parameters{MaxPolygonVerticesCount: 3, MaxX: 1, MaxY: 1}, true},
		{"vertex count zero", Parameters{MaxX: 1, MaxY: 1}, true},
	}
	for _, tc := range cases {
		err := tc.params.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}
