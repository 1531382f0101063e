package cli

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/yrpconv/internal/codec/ocgcore"
	"github.com/roach88/yrpconv/internal/config"
	"github.com/roach88/yrpconv/internal/replay"
	"github.com/roach88/yrpconv/internal/store"
)

func frame(msgType uint8, payload ...byte) []byte {
	b := []byte{msgType}
	b = binary.LittleEndian.AppendUint32(b, uint32(len(payload)))
	return append(b, payload...)
}

// sampleStream is a new turn, a phase change and 500 damage to player 1.
func sampleStream() []byte {
	var b []byte
	b = append(b, frame(ocgcore.MsgNewTurn, 0)...)
	b = append(b, frame(ocgcore.MsgNewPhase, 0x01, 0x00)...)
	b = append(b, frame(ocgcore.MsgDamage, 1, 0xf4, 0x01, 0x00, 0x00)...)
	return b
}

func writeInput(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "duel.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvPath, "")
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvert_WritesReplay(t *testing.T) {
	input := writeInput(t, sampleStream())

	out, err := execute(t, "convert", input)
	require.NoError(t, err)
	assert.Contains(t, out, "Converted "+input)
	assert.Contains(t, out, "Blocks: 3 (3 messages, 0 swallowed)")

	data, err := os.ReadFile(input + ".yrpb")
	require.NoError(t, err)
	log, err := replay.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 3, log.Len())
}

func TestConvert_OutputFlagAndJSON(t *testing.T) {
	input := writeInput(t, sampleStream())
	output := filepath.Join(t.TempDir(), "out.replay")

	out, err := execute(t, "convert", input, "-o", output, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   ConvertResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, output, resp.Data.Output)
	assert.Equal(t, 3, resp.Data.Stats.Blocks)
	assert.Empty(t, resp.Data.ID)
	assert.FileExists(t, output)
}

func TestConvert_ExitCodes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		code  int
	}{
		{"truncated header", append(sampleStream(), 0x28, 0x01), ExitTruncated},
		{"truncated payload", frame(ocgcore.MsgDamage, 1)[:5], ExitTruncated},
		{"unknown type", frame(0xfe, 1), ExitUnknownMessage},
		{"misaligned", frame(ocgcore.MsgNewTurn, 0, 0), ExitMisaligned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := writeInput(t, tt.input)
			_, err := execute(t, "convert", input)
			require.Error(t, err)
			assert.Equal(t, tt.code, GetExitCode(err))
			assert.NoFileExists(t, input+".yrpb")
		})
	}
}

func TestConvert_JSONErrorEnvelope(t *testing.T) {
	input := writeInput(t, frame(0xfe, 1))
	out, err := execute(t, "convert", input, "--format", "json")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "UNKNOWN_MESSAGE_TYPE", resp.Error.Code)
}

func TestConvert_MissingInput(t *testing.T) {
	_, err := execute(t, "convert", filepath.Join(t.TempDir(), "nope.bin"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConvert_RecordsHistory(t *testing.T) {
	input := writeInput(t, sampleStream())
	db := filepath.Join(t.TempDir(), "history.db")

	opts := &ConvertOptions{
		RootOptions: &RootOptions{Format: "text", Config: config.Default()},
		Database:    db,
		IDGenerator: store.NewFixedGenerator("conv-a", "conv-b"),
	}
	for range 2 {
		cmd := NewConvertCommand(opts.RootOptions)
		cmd.SetOut(&bytes.Buffer{})
		require.NoError(t, runConvert(opts, input, cmd))
	}

	out, err := execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "1  conv-a  "+input)
	assert.Contains(t, out, "2  conv-b  "+input)
	assert.Contains(t, out, "3 blocks")
}

func TestHistory_NoDatabase(t *testing.T) {
	_, err := execute(t, "history")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestHistory_Empty(t *testing.T) {
	out, err := execute(t, "history", "--db", filepath.Join(t.TempDir(), "h.db"))
	require.NoError(t, err)
	assert.Equal(t, "No conversions recorded.\n", out)
}

func TestHistory_ClosesDatabase(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	db := filepath.Join(t.TempDir(), "h.db")

	stderr := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"history", "--db", db})
	require.NoError(t, cmd.Execute())
	assert.NotContains(t, stderr.String(), "error closing database")

	st, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, st.Close())
}

func TestInspect(t *testing.T) {
	input := writeInput(t, sampleStream())
	_, err := execute(t, "convert", input)
	require.NoError(t, err)
	replayPath := input + ".yrpb"

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "inspect", replayPath, "-v")
		require.NoError(t, err)
		assert.Contains(t, out, "Blocks: 3")
		assert.Contains(t, out, "lp_change: 1")
		assert.Contains(t, out, "new_turn: 1")
		assert.Contains(t, out, "#1 new_phase")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "inspect", replayPath, "--format", "json")
		require.NoError(t, err)

		var resp struct {
			Data InspectSummary `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, 3, resp.Data.Blocks)
		assert.Equal(t, map[string]int{"new_turn": 1, "new_phase": 1, "lp_change": 1}, resp.Data.Events)
	})

	t.Run("dump", func(t *testing.T) {
		out, err := execute(t, "inspect", replayPath, "--dump")
		require.NoError(t, err)
		assert.Contains(t, out, `"kind": "lp_change"`)
		assert.Contains(t, out, `"amount": 500`)
	})
}
