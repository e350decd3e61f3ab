package utils_test

import (
	"bufio"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erauner12/homelab-renovate/internal/utils"
)

type failingFlushWriter struct {
	bytes.Buffer
}

func (writer *failingFlushWriter) Flush() error {
	return errors.New("flush rejected")
}

func TestNewFlushingWriterReturnsUnbufferedWriter(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	require.Same(testInstance, outputBuffer, utils.NewFlushingWriter(outputBuffer))
	require.Nil(testInstance, utils.NewFlushingWriter(nil))
}

func TestFlushingWriterFlushesEachWrite(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	bufferedWriter := bufio.NewWriterSize(outputBuffer, 4096)

	writer := utils.NewFlushingWriter(bufferedWriter)
	require.Same(testInstance, writer, utils.NewFlushingWriter(writer))

	bytesWritten, writeError := writer.Write([]byte("Selected 1 of 14 total repositories:\n"))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, 37, bytesWritten)
	require.Equal(testInstance, "Selected 1 of 14 total repositories:\n", outputBuffer.String())
	require.Zero(testInstance, bufferedWriter.Buffered())
}

func TestFlushingWriterReportsFlushFailure(testInstance *testing.T) {
	destination := &failingFlushWriter{}
	writer := utils.NewFlushingWriter(destination)

	bytesWritten, writeError := writer.Write([]byte("payload"))
	require.EqualError(testInstance, writeError, "flush rejected")
	require.Equal(testInstance, 7, bytesWritten)
	require.Equal(testInstance, "payload", destination.String())
}
