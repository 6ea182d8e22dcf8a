// ============================================================================
// cpplite - C++Lite Front End
// ============================================================================
//
// Package:     astviewer
// Description: File watcher that reloads the viewer when the source changes
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package astviewer

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	clerror "github.com/msto63/cpplite/pkg/core/error"
)

// Watcher reports changes of a single source file
type Watcher struct {
	fs   *fsnotify.Watcher
	path string
}

// fileChangedMsg is sent when the watched file was written or replaced
type fileChangedMsg struct{}

// watchErrMsg carries an error reported by the file system watcher
type watchErrMsg struct {
	err error
}

// Watch starts watching path. The parent directory is watched so that
// editors which replace the file on save are noticed as well.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, clerror.Wrap(err, "failed to resolve source path").
			WithCode(clerror.CodeInvalidInput).
			WithDetail("file", path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, clerror.Wrap(err, "failed to create file watcher").
			WithCode(clerror.CodeInternal)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, clerror.Wrap(err, "failed to watch source directory").
			WithCode(clerror.CodeInternal).
			WithDetail("file", path)
	}

	return &Watcher{fs: fw, path: abs}, nil
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// wait blocks until the watched file changes; it is used as a tea.Cmd
func (w *Watcher) wait() tea.Msg {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				return fileChangedMsg{}
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}
