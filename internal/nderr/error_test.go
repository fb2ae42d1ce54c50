package nderr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "CommandError", CommandError.String())
	assert.Equal(t, "UnableToRead", UnableToRead.String())
	assert.Equal(t, "Unknown", Kind(999).String())
}

func TestCommandErrorFormatsMessage(t *testing.T) {
	err := NewCommandError("%s already exists", "x")
	assert.Equal(t, CommandError, err.Kind)
	assert.Equal(t, "x already exists", err.Error())
}

func TestUnknownCommandMessage(t *testing.T) {
	err := NewUnknownCommand("frobnicate")
	assert.Equal(t, "Command frobnicate does not exist", err.Error())
}

func TestTooMuchArgumentsMessage(t *testing.T) {
	err := NewTooMuchArguments("axiom")
	assert.Equal(t, "Command 'axiom' does not expect arguments", err.Error())
}

func TestEmptyFileMessage(t *testing.T) {
	err := NewEmptyFile("proof.nd")
	assert.Equal(t, "file 'proof.nd' is empty", err.Error())
}

func TestUnfinishedProofAndEOFMessages(t *testing.T) {
	assert.Equal(t, "proof is unfinished at end of file", NewUnfinishedProof().Error())
	assert.Equal(t, "unexpected end of input", NewUnexpectedEOF().Error())
}
