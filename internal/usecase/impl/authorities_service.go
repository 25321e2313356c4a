package impl

import (
	"strings"

	"ucsbapi/config"
	"ucsbapi/internal/domain/entity"
	"ucsbapi/internal/usecase"
)

// grantedAuthoritiesService derives roles from the stored user and the auth config.
type grantedAuthoritiesService struct {
	cfg config.AuthConfig
}

// NewGrantedAuthoritiesService is the constructor for grantedAuthoritiesService.
func NewGrantedAuthoritiesService(cfg *config.Config) usecase.GrantedAuthoritiesUsecase {
	return &grantedAuthoritiesService{cfg: cfg.Auth}
}

// Roles always includes ROLE_USER. ROLE_ADMIN comes from the admin flag or the
// configured admin emails, ROLE_MEMBER from the Google Workspace domain.
func (srv *grantedAuthoritiesService) Roles(user *entity.User) entity.Roles {
	roles := entity.Roles{entity.RoleUser}
	if user == nil {
		return roles
	}

	if user.Admin || srv.cfg.IsAdminEmail(user.Email) {
		roles = append(roles, entity.RoleAdmin)
	}
	if srv.cfg.MemberHostedDomain != "" && strings.EqualFold(user.HostedDomain, srv.cfg.MemberHostedDomain) {
		roles = append(roles, entity.RoleMember)
	}

	return roles
}
