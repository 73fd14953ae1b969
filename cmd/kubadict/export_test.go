package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/kubadict/internal/cli"
)

func TestExportFormatFlag_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    ExportFormatFlag
		wantErr bool
	}{
		{
			name:  "yaml",
			value: "yaml",
			want:  ExportFormatFlag(cli.ExportFormatYAML),
		},
		{
			name:  "pdf",
			value: "pdf",
			want:  ExportFormatFlag(cli.ExportFormatPDF),
		},
		{
			name:    "invalid value",
			value:   "csv",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag ExportFormatFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid value")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, flag)
		})
	}
}

func TestExportFormatFlag_String(t *testing.T) {
	var nilFlag *ExportFormatFlag
	assert.Equal(t, "", nilFlag.String())

	flag := ExportFormatFlag(cli.ExportFormatPDF)
	assert.Equal(t, "pdf", flag.String())
	assert.Equal(t, "ExportFormat", flag.Type())
}

func TestNewExportCommand(t *testing.T) {
	cmd := newExportCommand()

	assert.Equal(t, "export [yaml|pdf]", cmd.Use)
	formatFlag := cmd.Flags().Lookup("format")
	assert.NotNil(t, formatFlag)
	assert.Equal(t, "yaml", formatFlag.DefValue)
	assert.Error(t, cmd.Args(cmd, []string{"yaml", "pdf"}))
}
