package utils

import "io"

type flusher interface {
	Flush() error
}

// flushingWriter flushes buffered command output after every write so partial reports
// reach the pipeline log even when a later write fails.
type flushingWriter struct {
	destination io.Writer
	flusher     flusher
}

// NewFlushingWriter wraps writer when it buffers output and returns it unchanged otherwise.
func NewFlushingWriter(writer io.Writer) io.Writer {
	bufferedWriter, buffers := writer.(flusher)
	if !buffers {
		return writer
	}
	if _, alreadyWrapped := writer.(*flushingWriter); alreadyWrapped {
		return writer
	}
	return &flushingWriter{destination: writer, flusher: bufferedWriter}
}

func (writer *flushingWriter) Write(data []byte) (int, error) {
	bytesWritten, writeError := writer.destination.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}
	return bytesWritten, writer.flusher.Flush()
}
