package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/payment-terminal-api/internal/domain"
	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
)

// Store contenedor del estado de la aplicación. El diseño asume un solo
// escritor (aplicación mono-usuario); el mutex existe únicamente porque los
// handlers de Fiber comparten la instancia entre goroutines, no como control
// de concurrencia multi-usuario.
type Store struct {
	mu    sync.Mutex
	state *AppState
	port  StatePort
}

// New hidrata el estado desde el puerto si existe un blob guardado; si no,
// arranca con los valores por defecto.
func New(port StatePort) (*Store, error) {
	state, ok, err := port.Load()
	if err != nil {
		return nil, err
	}
	if !ok || state == nil {
		state = NewAppState()
	}
	if state.CompanyClients == nil {
		state.CompanyClients = map[string][]string{}
	}
	return &Store{state: state, port: port}, nil
}

// persist guarda el estado completo de forma síncrona. Se llama con el mutex
// tomado, al final de cada mutación.
func (s *Store) persist() error {
	return s.port.Save(s.state)
}

// ── Empresas ─────────────────────────────────────────────────────────────────

// CompanyPatch campos opcionales para el merge parcial de UpdateCompany.
// ID, CreatedAt y Stats no son parchables por diseño.
type CompanyPatch struct {
	Name             *string
	Email            *string
	Address          *string
	Phone            *string
	Website          *string
	TaxID            *string
	PaymentAccountID *string
	IsActive         *bool
}

// AddCompany asigna id y fecha de creación, inicializa contadores en cero y
// agrega la empresa activa a la colección.
func (s *Store) AddCompany(c entity.Company) (entity.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.New().String()
	c.CreatedAt = time.Now()
	c.IsActive = true
	c.Stats = entity.ZeroStats()
	s.state.Companies = append(s.state.Companies, c)
	if err := s.persist(); err != nil {
		return entity.Company{}, err
	}
	return c, nil
}

// UpdateCompany fusiona los campos presentes del patch en la empresa. Si el
// id no existe es un no-op silencioso (found=false), no un error.
func (s *Store) UpdateCompany(id string, patch CompanyPatch) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Companies {
		if s.state.Companies[i].ID != id {
			continue
		}
		c := &s.state.Companies[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Email != nil {
			c.Email = *patch.Email
		}
		if patch.Address != nil {
			c.Address = *patch.Address
		}
		if patch.Phone != nil {
			c.Phone = *patch.Phone
		}
		if patch.Website != nil {
			c.Website = *patch.Website
		}
		if patch.TaxID != nil {
			c.TaxID = *patch.TaxID
		}
		if patch.PaymentAccountID != nil {
			c.PaymentAccountID = *patch.PaymentAccountID
		}
		if patch.IsActive != nil {
			c.IsActive = *patch.IsActive
		}
		return true, s.persist()
	}
	return false, nil
}

// DeleteCompany elimina exactamente una empresa. No hay borrado en cascada:
// las transacciones y borradores asociados son colecciones independientes.
// Id inexistente: no-op.
func (s *Store) DeleteCompany(id string) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Companies {
		if s.state.Companies[i].ID == id {
			s.state.Companies = append(s.state.Companies[:i], s.state.Companies[i+1:]...)
			delete(s.state.CompanyClients, id)
			return true, s.persist()
		}
	}
	return false, nil
}

// ToggleCompanyStatus invierte IsActive (desactivación reversible). Aplicado
// dos veces vuelve al valor original. Id inexistente: no-op.
func (s *Store) ToggleCompanyStatus(id string) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Companies {
		if s.state.Companies[i].ID == id {
			s.state.Companies[i].IsActive = !s.state.Companies[i].IsActive
			return true, s.persist()
		}
	}
	return false, nil
}

// Companies devuelve una copia de la colección de empresas.
func (s *Store) Companies() []entity.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Company, len(s.state.Companies))
	copy(out, s.state.Companies)
	return out
}

// ActiveCompanies solo las empresas con IsActive.
func (s *Store) ActiveCompanies() []entity.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Company, 0, len(s.state.Companies))
	for _, c := range s.state.Companies {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

// Company busca una empresa por id.
func (s *Store) Company(id string) (entity.Company, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.state.Companies {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Company{}, false
}

// RecordClient registra un email de cliente para la empresa y actualiza el
// contador de clientes distintos. Decisión de diseño: los contadores de Stats
// se mantienen de forma independiente (no se recalculan desde las facturas).
func (s *Store) RecordClient(companyID, clientEmail string) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.Companies {
		if s.state.Companies[i].ID == companyID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	for _, e := range s.state.CompanyClients[companyID] {
		if e == clientEmail {
			return true, nil // ya contado, sin mutación ni persistencia
		}
	}
	s.state.CompanyClients[companyID] = append(s.state.CompanyClients[companyID], clientEmail)
	s.state.Companies[idx].Stats.ClientCount = len(s.state.CompanyClients[companyID])
	return true, s.persist()
}

// ── Configuración ────────────────────────────────────────────────────────────

// SettingsPatch merge parcial para UpdateSettings.
type SettingsPatch struct {
	DefaultCurrency    *string
	DefaultTaxRate     *decimal.Decimal
	ProcessingFeeRate  *decimal.Decimal
	ProcessingFeeFixed *decimal.Decimal
}

// UpdateSettings fusiona los campos presentes; siempre tiene éxito (salvo
// fallo del puerto de persistencia).
func (s *Store) UpdateSettings(patch SettingsPatch) (entity.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.DefaultCurrency != nil {
		s.state.Settings.DefaultCurrency = *patch.DefaultCurrency
	}
	if patch.DefaultTaxRate != nil {
		s.state.Settings.DefaultTaxRate = *patch.DefaultTaxRate
	}
	if patch.ProcessingFeeRate != nil {
		s.state.Settings.ProcessingFeeRate = *patch.ProcessingFeeRate
	}
	if patch.ProcessingFeeFixed != nil {
		s.state.Settings.ProcessingFeeFixed = *patch.ProcessingFeeFixed
	}
	if err := s.persist(); err != nil {
		return entity.AppSettings{}, err
	}
	return s.state.Settings, nil
}

// Settings configuración vigente.
func (s *Store) Settings() entity.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

// ── Transacciones ────────────────────────────────────────────────────────────

// AddTransaction agrega al log append-only (no existe update ni delete).
// Si la transacción referencia una empresa y fue exitosa, acredita sus
// contadores de ingresos y facturas.
func (s *Store) AddTransaction(t entity.Transaction) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	s.state.Transactions = append(s.state.Transactions, t)

	if t.CompanyID != "" && t.Status == entity.TxStatusSucceeded {
		for i := range s.state.Companies {
			if s.state.Companies[i].ID == t.CompanyID {
				stats := &s.state.Companies[i].Stats
				stats.TotalRevenue = stats.TotalRevenue.Add(t.Amount)
				stats.InvoiceCount++
				break
			}
		}
	}
	if err := s.persist(); err != nil {
		return entity.Transaction{}, err
	}
	return t, nil
}

// Transactions devuelve una copia del log completo.
func (s *Store) Transactions() []entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Transaction, len(s.state.Transactions))
	copy(out, s.state.Transactions)
	return out
}

// ── Borradores ───────────────────────────────────────────────────────────────

// SaveDraft guarda una factura sin enviar. Lista append-only; no hay
// restricción de unicidad más allá del id generado.
func (s *Store) SaveDraft(record entity.InvoiceRecord) (entity.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := entity.Draft{
		ID:      uuid.New().String(),
		Data:    record,
		SavedAt: time.Now(),
	}
	s.state.Drafts = append(s.state.Drafts, draft)
	if err := s.persist(); err != nil {
		return entity.Draft{}, err
	}
	return draft, nil
}

// Drafts devuelve una copia de los borradores.
func (s *Store) Drafts() []entity.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Draft, len(s.state.Drafts))
	copy(out, s.state.Drafts)
	return out
}

// Draft busca un borrador por id (también resuelve /pay/:id).
func (s *Store) Draft(id string) (entity.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.state.Drafts {
		if d.ID == id || d.Data.ID == id {
			return d, true
		}
	}
	return entity.Draft{}, false
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

// AddUser persiste una cuenta nueva. Devuelve ErrEmailAlreadyExists si el
// email ya está registrado.
func (s *Store) AddUser(u entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.state.Users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	s.state.Users = append(s.state.Users, u)
	return s.persist()
}

// UserByEmail busca un usuario por email.
func (s *Store) UserByEmail(email string) (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.state.Users {
		if u.Email == email {
			return u, true
		}
	}
	return entity.User{}, false
}

// MarkEmailVerified marca el email como verificado. No-op si no existe.
func (s *Store) MarkEmailVerified(email string) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Users {
		if s.state.Users[i].Email == email {
			s.state.Users[i].EmailVerified = true
			s.state.Users[i].UpdatedAt = time.Now()
			return true, s.persist()
		}
	}
	return false, nil
}
