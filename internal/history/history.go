// Package history keeps the interactive session's command history, backed by
// ~/.ben_history.
package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Manager struct {
	entries  []string
	file     string
	maxSize  int
	position int
}

func New() *Manager {
	home, _ := os.UserHomeDir()
	m := &Manager{
		file:    filepath.Join(home, ".ben_history"),
		maxSize: 1000,
	}
	m.Load()
	return m
}

// Add appends a command, dropping blanks and consecutive duplicates and
// trimming to the size limit.
func (m *Manager) Add(command string) {
	command = strings.TrimSpace(command)
	if command == "" {
		return
	}
	if len(m.entries) > 0 && m.entries[len(m.entries)-1] == command {
		m.position = len(m.entries)
		return
	}

	m.entries = append(m.entries, command)
	if len(m.entries) > m.maxSize {
		m.entries = m.entries[len(m.entries)-m.maxSize:]
	}
	m.position = len(m.entries)
}

// Previous steps back through history; it returns the oldest entry again
// once the beginning is reached.
func (m *Manager) Previous() (string, bool) {
	if len(m.entries) == 0 {
		return "", false
	}
	if m.position > 0 {
		m.position--
	}
	return m.entries[m.position], true
}

// Next steps forward; past the newest entry it reports false, meaning the
// caller should restore whatever the user was typing.
func (m *Manager) Next() (string, bool) {
	if m.position >= len(m.entries)-1 {
		m.position = len(m.entries)
		return "", false
	}
	m.position++
	return m.entries[m.position], true
}

// Reset moves the navigation position past the newest entry.
func (m *Manager) Reset() {
	m.position = len(m.entries)
}

// All returns a copy of the entries, oldest first.
func (m *Manager) All() []string {
	return append([]string{}, m.entries...)
}

func (m *Manager) Size() int {
	return len(m.entries)
}

func (m *Manager) SetMaxSize(size int) {
	m.maxSize = size
	if len(m.entries) > size {
		m.entries = m.entries[len(m.entries)-size:]
	}
	m.position = len(m.entries)
}

// SetFile changes the backing file path.
func (m *Manager) SetFile(file string) {
	m.file = file
}

// Load reads the backing file; a missing file is not an error.
func (m *Manager) Load() error {
	file, err := os.Open(m.file)
	if err != nil {
		return nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			m.entries = append(m.entries, line)
		}
	}
	if len(m.entries) > m.maxSize {
		m.entries = m.entries[len(m.entries)-m.maxSize:]
	}
	m.position = len(m.entries)
	return scanner.Err()
}

// Save writes the entries back to the backing file.
func (m *Manager) Save() error {
	file, err := os.Create(m.file)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, entry := range m.entries {
		if _, err := fmt.Fprintln(file, entry); err != nil {
			return err
		}
	}
	return nil
}
