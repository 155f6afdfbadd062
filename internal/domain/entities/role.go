package entities

// Role representa o papel de um membro dentro de um grupo de avaliação
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// IsValid verifica se o role é conhecido
func (r Role) IsValid() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleMember
}

// CanManageGroup verifica se o role pode alterar/excluir o grupo
func (r Role) CanManageGroup() bool {
	return r == RoleOwner
}

// CanModerateSubjects verifica se o role pode editar/excluir qualquer subject do grupo
func (r Role) CanModerateSubjects() bool {
	return r == RoleOwner || r == RoleAdmin
}
