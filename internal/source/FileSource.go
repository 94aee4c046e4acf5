// Copyright 2024 The logsieve authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package source reads raw input and turns it into payloads. This is the
// source-reader role of the payload lifecycle; all blocking I/O lives here,
// outside the contract packages.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/logsieve/logsieve/pkg/logsieve/rawdata"
)

// FileSource tails a single file and emits each appended line as a
// shared-buffer payload on Out. Shared buffers let the host hand the same
// line to several racing parsers without copying per parser.
type FileSource struct {
	Out <-chan rawdata.RawData

	filename string
	sourceId string
	ctx      context.Context

	file       *os.File
	out        chan rawdata.RawData
	readBuf    []byte
	workingBuf []byte

	logger *zap.Logger
}

// NewFileSource creates a FileSource for filename. The source does not read
// anything until Start is called.
func NewFileSource(ctx context.Context, filename string, logger *zap.Logger) (*FileSource, error) {
	out := make(chan rawdata.RawData)
	return &FileSource{
		Out: out,

		filename: filename,
		sourceId: uuid.NewString(),
		ctx:      ctx,

		out:        out,
		readBuf:    make([]byte, 4096),
		workingBuf: make([]byte, 0, 4096),

		logger: logger,
	}, nil
}

// Start tails the file until the context is cancelled. It closes Out on
// return. fsnotify write events trigger reads; a slow ticker catches writes
// on filesystems where notifications are unreliable.
func (fs *FileSource) Start() error {
	defer close(fs.out)

	f, err := os.Open(fs.filename)
	if err != nil {
		return fmt.Errorf("error opening file=%s: %w", fs.filename, err)
	}
	defer f.Close()
	fs.file = f

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher for file=%s: %w", fs.filename, err)
	}
	defer watcher.Close()
	if err := watcher.Add(fs.filename); err != nil {
		return fmt.Errorf("error watching file=%s: %w", fs.filename, err)
	}

	fs.logger.Info("tailing file",
		zap.String("fileName", fs.filename),
		zap.String("sourceId", fs.sourceId))

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	fs.readToEnd()
	for {
		select {
		case <-fs.ctx.Done():
			return nil
		case evt := <-watcher.Events:
			if evt.Op&fsnotify.Write == 0 {
				continue
			}
			fs.readToEnd()
		case err := <-watcher.Errors:
			fs.logger.Warn("got watcher error",
				zap.String("fileName", fs.filename),
				zap.Error(err))
		case <-ticker.C:
			fs.readToEnd()
		}
	}
}

func (fs *FileSource) readToEnd() {
	for {
		read, err := fs.file.Read(fs.readBuf)
		if read > 0 {
			fs.workingBuf = append(fs.workingBuf, fs.readBuf[:read]...)
			fs.emitLines()
		}
		if err == io.EOF || read == 0 {
			return
		}
		if err != nil {
			fs.logger.Error("unexpected error reading file",
				zap.String("fileName", fs.filename),
				zap.Error(err))
			return
		}
	}
}

func (fs *FileSource) emitLines() {
	for {
		idx := bytes.IndexByte(fs.workingBuf, '\n')
		if idx < 0 {
			return
		}
		line := append([]byte(nil), fs.workingBuf[:idx]...)
		fs.workingBuf = fs.workingBuf[idx+1:]
		if len(line) == 0 {
			continue
		}
		select {
		case fs.out <- rawdata.NewShared(line):
		case <-fs.ctx.Done():
			return
		}
	}
}
