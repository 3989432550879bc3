// Package store implementa el estado persistido de la aplicación: empresas,
// configuración, log de transacciones y borradores. Todo el estado vive en un
// único blob serializado bajo una clave fija (Namespace) y se reemplaza
// completo en cada mutación, a través de un puerto de persistencia inyectable.
package store

import (
	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
)

// Namespace clave fija bajo la cual se persiste el blob de estado.
const Namespace = "payment-terminal-storage"

// AppState es la raíz serializable del estado. CompanyClients guarda los
// emails de clientes distintos por empresa para mantener el contador
// ClientCount.
type AppState struct {
	Companies      []entity.Company      `json:"companies"`
	Settings       entity.AppSettings    `json:"settings"`
	Transactions   []entity.Transaction  `json:"transactions"`
	Drafts         []entity.Draft        `json:"drafts"`
	Users          []entity.User         `json:"users"`
	CompanyClients map[string][]string   `json:"companyClients"`
}

// NewAppState estado inicial con la configuración por defecto.
func NewAppState() *AppState {
	return &AppState{
		Companies:      []entity.Company{},
		Settings:       entity.DefaultSettings(),
		Transactions:   []entity.Transaction{},
		Drafts:         []entity.Draft{},
		Users:          []entity.User{},
		CompanyClients: map[string][]string{},
	}
}

// StatePort puerto de persistencia del estado. Load devuelve (estado, true)
// si había un blob guardado, (nil, false) si es el primer arranque. Save
// reemplaza el blob completo de forma síncrona.
type StatePort interface {
	Load() (*AppState, bool, error)
	Save(*AppState) error
}
