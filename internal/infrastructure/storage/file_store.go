// Package storage implementa el backend de persistencia por defecto: todo el
// estado de la aplicación serializado como un único blob JSON en disco, bajo
// el namespace fijo del producto.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/payment-terminal-api/internal/application/store"
)

// FileStore implementa store.StatePort sobre un archivo JSON.
// La escritura es atómica: se escribe a un temporal y se renombra.
type FileStore struct {
	path string
}

// NewFileStore crea el backend en dir. El archivo toma el nombre del namespace.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, store.Namespace+".json")}, nil
}

// Load lee el estado persistido. found=false si nunca se ha guardado nada.
func (f *FileStore) Load() (*store.AppState, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("storage: leer estado: %w", err)
	}
	var state store.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, false, fmt.Errorf("storage: decodificar estado: %w", err)
	}
	return &state, true, nil
}

// Save persiste el estado completo.
func (f *FileStore) Save(state *store.AppState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: codificar estado: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: escribir estado: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("storage: reemplazar estado: %w", err)
	}
	return nil
}

// Path devuelve la ruta del archivo de estado (útil para logs y diagnóstico).
func (f *FileStore) Path() string { return f.path }
