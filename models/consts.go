package models

type ProcessStatus string

const (
	StatusEnProceso  ProcessStatus = "EN_PROCESO"
	StatusEntrevista ProcessStatus = "ENTREVISTA"
	StatusAdmitido   ProcessStatus = "ADMITIDO"
	StatusDescartado ProcessStatus = "DESCARTADO"
	StatusContratado ProcessStatus = "CONTRATADO"
)

func (s ProcessStatus) IsValid() bool {
	switch s {
	case StatusEnProceso, StatusEntrevista, StatusAdmitido, StatusDescartado, StatusContratado:
		return true
	}
	return false
}

type UserRole string

const (
	UserRoleTH    UserRole = "TH"
	UserRoleAdmin UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	UserRoleTH:    "Talento Humano",
	UserRoleAdmin: "Administrador",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

type KnowledgeKind string

const (
	KnowledgeKindSoft      KnowledgeKind = "soft"
	KnowledgeKindTechnical KnowledgeKind = "technical"
	KnowledgeKindTool      KnowledgeKind = "tool"
)

func (k KnowledgeKind) IsValid() bool {
	switch k {
	case KnowledgeKindSoft, KnowledgeKindTechnical, KnowledgeKindTool:
		return true
	}
	return false
}

type RequestState string

const (
	RequestStatePending  RequestState = "pending"
	RequestStateAccepted RequestState = "accepted"
	RequestStateRejected RequestState = "rejected"
)

func (s RequestState) IsValid() bool {
	switch s {
	case RequestStatePending, RequestStateAccepted, RequestStateRejected:
		return true
	}
	return false
}

type RequestMotive string

const (
	RequestMotiveUpdate RequestMotive = "update data"
	RequestMotiveDelete RequestMotive = "delete application"
)

func (m RequestMotive) IsValid() bool {
	return m == RequestMotiveUpdate || m == RequestMotiveDelete
}
