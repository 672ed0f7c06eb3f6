package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/curvecheck/internal/config"
	"github.com/andyballingall/curvecheck/internal/curve"
)

func TestNewRenderSchemaCmd(t *testing.T) {
	t.Parallel()

	renderedBytes := []byte(`{"type": "object"}`)

	tests := []struct {
		name        string
		cfg         *config.Config
		args        []string
		setupMock   func(m *MockManager)
		wantErrType interface{}
		wantErr     bool
		wantOutput  string
	}{
		{
			name: "Render a class",
			args: []string{"curve"},
			setupMock: func(m *MockManager) {
				m.On("RenderSchema", mock.Anything, curve.ClassCurve, false).Return(renderedBytes, nil)
			},
			wantOutput: string(renderedBytes),
		},
		{
			name: "Render strict",
			args: []string{"--strict", "rate-helper"},
			setupMock: func(m *MockManager) {
				m.On("RenderSchema", mock.Anything, curve.ClassRateHelper, true).Return(renderedBytes, nil)
			},
			wantOutput: string(renderedBytes),
		},
		{
			name: "Strict from configuration",
			cfg:  &config.Config{Strict: true, Output: config.OutputText, Workers: 1},
			args: []string{"request"},
			setupMock: func(m *MockManager) {
				m.On("RenderSchema", mock.Anything, curve.ClassRequest, true).Return(renderedBytes, nil)
			},
			wantOutput: string(renderedBytes),
		},
		{
			name:        "Unknown class",
			args:        []string{"yield"},
			setupMock:   func(*MockManager) {},
			wantErrType: &curve.UnknownClassNameError{},
		},
		{
			name:      "Missing class",
			args:      []string{},
			setupMock: func(*MockManager) {},
			wantErr:   true,
		},
		{
			name: "Manager error",
			args: []string{"index"},
			setupMock: func(m *MockManager) {
				m.On("RenderSchema", mock.Anything, curve.ClassIndex, false).Return(nil, errors.New("boom"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mgr := &MockManager{cfg: tt.cfg}
			tt.setupMock(mgr)

			cmd := NewRenderSchemaCmd(mgr)
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			err := cmd.ExecuteContext(context.Background())

			switch {
			case tt.wantErrType != nil:
				require.Error(t, err)
				assert.IsType(t, tt.wantErrType, err)
			case tt.wantErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantOutput+"\n", out.String())
			}
			mgr.AssertExpectations(t)
		})
	}
}
