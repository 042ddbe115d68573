package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/userdash/internal/client/api"
	"github.com/dmitrijs2005/userdash/internal/client/models"
	"github.com/dmitrijs2005/userdash/internal/client/router"
	"github.com/dmitrijs2005/userdash/internal/client/views"
)

// handlePage navigates to the requested path. When the guard or a view sent
// us elsewhere, the browser follows with a 303.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	path := router.Clean(r.URL.Path)
	if err := s.core.Nav.Navigate(r.Context(), path); err != nil {
		s.logger.Error(r.Context(), "navigation failed", "path", path, "error", err)
		http.Error(w, "navigation failed", http.StatusInternalServerError)
		return
	}
	if cur := s.core.Nav.Current(); cur != path {
		http.Redirect(w, r, cur, http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusOK, page{})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !s.enter(w, r, router.LoginPath) {
		return
	}

	email := r.PostFormValue("email")
	password := []byte(r.PostFormValue("password"))
	if err := s.core.Login.Submit(ctx, email, password); err != nil {
		s.render(w, r, formStatus(err), page{Error: formError(err), Email: email})
		return
	}
	http.Redirect(w, r, s.core.Nav.Current(), http.StatusSeeOther)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !s.enter(w, r, router.RegisterPath) {
		return
	}

	reg := models.Registration{
		FullName:    r.PostFormValue(models.FieldFullName),
		Username:    r.PostFormValue(models.FieldUsername),
		Email:       r.PostFormValue(models.FieldEmail),
		PhoneNumber: r.PostFormValue(models.FieldPhoneNumber),
	}
	if err := s.core.Register.Submit(ctx, reg, []byte(r.PostFormValue("password"))); err != nil {
		s.render(w, r, formStatus(err), page{Error: formError(err), Fields: registrationFields(reg)})
		return
	}
	http.Redirect(w, r, s.core.Nav.Current(), http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.core.Home.Logout(r.Context()); err != nil {
		s.logger.Error(r.Context(), "logout", "error", err)
	}
	http.Redirect(w, r, router.LoginPath, http.StatusSeeOther)
}

func (s *Server) handleProfileEdit(w http.ResponseWriter, r *http.Request) {
	if !s.onProfile(w, r) {
		return
	}
	if err := s.core.Profile.BeginEdit(); err != nil {
		s.render(w, r, http.StatusConflict, page{Error: err.Error()})
		return
	}
	s.render(w, r, http.StatusOK, page{})
}

// handleProfileSave copies the posted form into the draft and saves it.
// The email input is disabled in the form and ignored if sent anyway.
func (s *Server) handleProfileSave(w http.ResponseWriter, r *http.Request) {
	if !s.onProfile(w, r) {
		return
	}
	if !s.core.Profile.Editing() {
		s.render(w, r, http.StatusConflict, page{Error: views.ErrNotEditing.Error()})
		return
	}
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, page{Error: "invalid form"})
		return
	}

	for _, f := range models.ProfileFields {
		if f.ReadOnly {
			continue
		}
		if _, ok := r.PostForm[f.ID]; !ok {
			continue
		}
		if err := s.core.Profile.SetField(f.ID, r.PostForm.Get(f.ID)); err != nil {
			s.render(w, r, http.StatusBadRequest, page{Error: err.Error()})
			return
		}
	}

	if err := s.core.Profile.Save(r.Context()); err != nil {
		s.render(w, r, http.StatusOK, page{Error: "Your changes were not saved."})
		return
	}
	s.render(w, r, http.StatusOK, page{})
}

func (s *Server) handleProfileCancel(w http.ResponseWriter, r *http.Request) {
	if !s.onProfile(w, r) {
		return
	}
	s.core.Profile.Cancel()
	s.render(w, r, http.StatusOK, page{})
}

// enter makes path current before a form submit. It reports false, after
// redirecting, when the guard sends the browser elsewhere.
func (s *Server) enter(w http.ResponseWriter, r *http.Request, path string) bool {
	if s.core.Nav.Current() == path {
		return true
	}
	if err := s.core.Nav.Navigate(r.Context(), path); err != nil {
		http.Error(w, "navigation failed", http.StatusInternalServerError)
		return false
	}
	if cur := s.core.Nav.Current(); cur != path {
		http.Redirect(w, r, cur, http.StatusSeeOther)
		return false
	}
	return true
}

// onProfile keeps the profile controller's edit state: profile actions only
// apply to the profile view already shown, otherwise the browser reloads it.
func (s *Server) onProfile(w http.ResponseWriter, r *http.Request) bool {
	if s.core.Nav.Current() != router.ProfilePath {
		http.Redirect(w, r, router.ProfilePath, http.StatusSeeOther)
		return false
	}
	return true
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, p page) {
	st := s.core.Session.State()
	p.Authorized = st.Authorized()
	p.Identity = st.Identity()

	var name string
	switch s.core.Nav.Current() {
	case router.HomePath:
		name, p.Title = "home.html", "Home"
		p.Home = s.core.Home.Model()
	case router.ProfilePath:
		name, p.Title = "profile.html", "Profile"
		p.Profile = s.core.Profile.Model()
	case router.RegisterPath:
		name, p.Title = "register.html", "Register"
		if p.Fields == nil {
			p.Fields = registrationFields(models.Registration{})
		}
	default:
		name, p.Title = "login.html", "Login"
	}

	w.Header().Set(headerContentType, contentTypeHTMLUTF8)
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, p); err != nil {
		s.logger.Error(r.Context(), "render template", "template", name, "error", err)
	}
}

func registrationFields(reg models.Registration) []views.FieldModel {
	values := map[string]string{
		models.FieldFullName:    reg.FullName,
		models.FieldUsername:    reg.Username,
		models.FieldEmail:       reg.Email,
		models.FieldPhoneNumber: reg.PhoneNumber,
	}
	fields := make([]views.FieldModel, 0, len(models.ProfileFields))
	for _, f := range models.ProfileFields {
		fields = append(fields, views.FieldModel{FieldSpec: f, Value: values[f.ID]})
	}
	return fields
}

func formStatus(err error) int {
	switch {
	case errors.Is(err, views.ErrIncomplete):
		return http.StatusBadRequest
	case errors.Is(err, api.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, api.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, api.ErrUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func formError(err error) string {
	switch {
	case errors.Is(err, views.ErrIncomplete):
		return "Email and password are required."
	case errors.Is(err, api.ErrUnauthorized):
		return "Invalid email or password."
	case errors.Is(err, api.ErrConflict):
		return "An account with this email already exists."
	case errors.Is(err, api.ErrUnavailable):
		return "The server is unavailable, try again later."
	}
	return "Something went wrong."
}
