package sync

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/labelsync/pkg/constants"
	"github.com/agentstation/labelsync/pkg/errors"
	"github.com/agentstation/labelsync/pkg/labels"
)

func TestDefaults(t *testing.T) {
	opts := Defaults()

	assert.Equal(t, constants.DefaultTemplateFile, opts.TemplateFile)
	assert.Nil(t, opts.Labels)
	assert.False(t, opts.DryRun)
	assert.True(t, opts.Creates)
	assert.True(t, opts.Deletes)
	assert.Equal(t, 1, opts.Concurrency)
	assert.Equal(t, constants.SyncTimeout, opts.Timeout)
	assert.NotNil(t, opts.Output)
}

func TestApplyOptions(t *testing.T) {
	var buf bytes.Buffer
	desired := []labels.Label{{Name: "bug", Color: "fc2929"}}

	opts := Defaults().Apply(
		WithTemplateFile("team-labels.yaml"),
		WithLabels(desired),
		WithDryRun(true),
		WithCreates(false),
		WithDeletes(false),
		WithConcurrency(4),
		WithTimeout(time.Minute),
		WithOutput(&buf),
	)

	assert.Equal(t, "team-labels.yaml", opts.TemplateFile)
	assert.Equal(t, desired, opts.Labels)
	assert.True(t, opts.DryRun)
	assert.False(t, opts.Creates)
	assert.False(t, opts.Deletes)
	assert.Equal(t, 4, opts.Concurrency)
	assert.Equal(t, time.Minute, opts.Timeout)
	assert.Equal(t, &buf, opts.Output)
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
		field   string
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *Options) {},
		},
		{
			name:    "negative timeout",
			mutate:  func(o *Options) { o.Timeout = -time.Second },
			wantErr: true,
			field:   "Timeout",
		},
		{
			name:    "negative concurrency",
			mutate:  func(o *Options) { o.Concurrency = -1 },
			wantErr: true,
			field:   "Concurrency",
		},
		{
			name: "no input source",
			mutate: func(o *Options) {
				o.TemplateFile = ""
				o.Labels = nil
			},
			wantErr: true,
			field:   "TemplateFile",
		},
		{
			name: "explicit labels without template",
			mutate: func(o *Options) {
				o.TemplateFile = ""
				o.Labels = []labels.Label{{Name: "bug", Color: "fc2929"}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Defaults()
			tt.mutate(opts)

			err := opts.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var valErr *errors.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.field, valErr.Field)
		})
	}
}
