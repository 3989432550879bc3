package entity

import "time"

// User cuenta de acceso a la aplicación. El acceso a las rutas principales
// exige EmailVerified; una sesión sin verificar vuelve al estado "por verificar".
// El hash de la contraseña forma parte del blob de estado persistido (sin él
// nadie podría iniciar sesión tras un reinicio); nunca sale por la API porque
// las respuestas usan dto.UserResponse, que no lo incluye.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"passwordHash"`
	Name          string    `json:"name"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
