package serializer

import (
	"errors"
	"testing"

	"github.com/mailru/timespan/pkg/serializer/errs"
	"github.com/mailru/timespan/pkg/timespan"
)

func TestPrintfUnmarshalSeconds(t *testing.T) {
	type args struct {
		val string
	}
	tests := []struct {
		name    string
		args    args
		want    timespan.Duration
		wantErr error
	}{
		{
			name:    "simple",
			args:    args{val: `1.25`},
			want:    timespan.Milliseconds(1_250),
			wantErr: nil,
		},
		{
			name:    "negative",
			args:    args{val: `-0.5`},
			want:    timespan.Milliseconds(-500),
			wantErr: nil,
		},
		{
			name:    "err",
			args:    args{val: `{"key": {"nestedkey": "value}}`},
			want:    timespan.Zero,
			wantErr: errs.ErrPrintfParse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got timespan.Duration
			err := PrintfUnmarshalSeconds("%f", tt.args.val, &got)
			if tt.wantErr != err && !errors.Is(err, tt.wantErr) {
				t.Errorf("PrintfUnmarshalSeconds() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got != tt.want {
				t.Errorf("PrintfUnmarshalSeconds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrintfMarshalSeconds(t *testing.T) {
	got, err := PrintfMarshalSeconds("%.3f", timespan.Milliseconds(1_250))
	if err != nil {
		t.Fatalf("PrintfMarshalSeconds() error = %v", err)
	}
	if got != "1.250" {
		t.Errorf("PrintfMarshalSeconds() = %q, want %q", got, "1.250")
	}
}
