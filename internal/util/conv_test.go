package util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMustParseUint(t *testing.T) {
	tests := []struct {
		in   string
		want uint
	}{
		{"42", 42},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
	}

	for _, tt := range tests {
		if got := MustParseUint(tt.in); got != tt.want {
			t.Errorf("MustParseUint(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseUintParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		value   string
		want    uint
		wantErr bool
	}{
		{"valid id", "17", 17, false},
		{"zero", "0", 0, false},
		{"non-numeric", "seventeen", 0, true},
		{"negative", "-1", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Params = gin.Params{{Key: "id", Value: tt.value}}

			got, err := ParseUintParam(ctx, "id")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUintParam() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseUintParam() = %d, want %d", got, tt.want)
			}
		})
	}
}
