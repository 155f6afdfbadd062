package postgres

import "gorm.io/datatypes"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID        string  `gorm:"type:uuid;primary_key"`
	Email     string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username  string  `gorm:"type:varchar(50)"`
	DisplayID *string `gorm:"type:varchar(8);uniqueIndex"`
	AvatarURL *string `gorm:"type:varchar(500)"`
	CreatedAt int64   `gorm:"autoCreateTime;index"`
	UpdatedAt int64   `gorm:"autoUpdateTime"`
	DeletedAt *int64  `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// CategoryModel é o model GORM para a taxonomia fixa de categorias
type CategoryModel struct {
	ID         string `gorm:"type:uuid;primary_key"`
	Name       string `gorm:"type:varchar(100);not null"`
	Icon       string `gorm:"type:varchar(100)"`
	OrderIndex int    `gorm:"not null;index"`
	CreatedAt  int64  `gorm:"autoCreateTime"`
	UpdatedAt  int64  `gorm:"autoUpdateTime"`
	DeletedAt  *int64 `gorm:"index"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// ReviewGroupModel é o model GORM para grupos de avaliação
type ReviewGroupModel struct {
	ID             string         `gorm:"type:uuid;primary_key"`
	Name           string         `gorm:"type:varchar(100);not null"`
	Description    *string        `gorm:"type:varchar(500)"`
	CategoryID     string         `gorm:"type:uuid;not null;index"`
	IsPrivate      bool           `gorm:"not null;default:true"`
	ImageURL       *string        `gorm:"type:varchar(500)"`
	MetadataFields datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      int64          `gorm:"autoCreateTime;index"`
	UpdatedAt      int64          `gorm:"autoUpdateTime"`
	DeletedAt      *int64         `gorm:"index"` // Soft delete

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

func (ReviewGroupModel) TableName() string {
	return "review_groups"
}

// MembershipModel é o model GORM para vínculos usuário/grupo
type MembershipModel struct {
	ID            string `gorm:"type:uuid;primary_key"`
	ReviewGroupID string `gorm:"type:uuid;not null;index:idx_members_group_user"`
	UserID        string `gorm:"type:uuid;not null;index:idx_members_group_user"`
	Role          string `gorm:"type:varchar(20);not null"`
	JoinedAt      int64  `gorm:"autoCreateTime;index"`
	DeletedAt     *int64 `gorm:"index"` // Soft delete

	User  *UserModel        `gorm:"foreignKey:UserID"`
	Group *ReviewGroupModel `gorm:"foreignKey:ReviewGroupID"`
}

func (MembershipModel) TableName() string {
	return "review_group_members"
}

// EvaluationCriterionModel é o model GORM para critérios de avaliação
type EvaluationCriterionModel struct {
	ID            string `gorm:"type:uuid;primary_key"`
	ReviewGroupID string `gorm:"type:uuid;not null;index"`
	Name          string `gorm:"type:varchar(100);not null"`
	OrderIndex    int    `gorm:"not null"`
	CreatedAt     int64  `gorm:"autoCreateTime"`
	DeletedAt     *int64 `gorm:"index"` // Soft delete (apenas via cascata)
}

func (EvaluationCriterionModel) TableName() string {
	return "evaluation_criteria"
}

// ReviewSubjectModel é o model GORM para subjects de avaliação
type ReviewSubjectModel struct {
	ID            string         `gorm:"type:uuid;primary_key"`
	ReviewGroupID string         `gorm:"type:uuid;not null;index"`
	Name          string         `gorm:"type:varchar(200);not null"`
	Images        datatypes.JSON `gorm:"type:jsonb"`
	Metadata      datatypes.JSON `gorm:"type:jsonb"`
	CreatedBy     string         `gorm:"type:uuid;not null;index"`
	CreatedAt     int64          `gorm:"autoCreateTime;index"`
	UpdatedAt     int64          `gorm:"autoUpdateTime"`
	DeletedAt     *int64         `gorm:"index"` // Soft delete
}

func (ReviewSubjectModel) TableName() string {
	return "review_subjects"
}

// ReviewModel é o model GORM para reviews
type ReviewModel struct {
	ID              string         `gorm:"type:uuid;primary_key"`
	ReviewSubjectID string         `gorm:"type:uuid;not null;index:idx_reviews_subject_user"`
	UserID          string         `gorm:"type:uuid;not null;index:idx_reviews_subject_user"`
	Comment         *string        `gorm:"type:text"`
	TotalScore      float64        `gorm:"not null"`
	Images          datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       int64          `gorm:"autoCreateTime;index"`
	UpdatedAt       int64          `gorm:"autoUpdateTime"`
	DeletedAt       *int64         `gorm:"index"` // Soft delete

	User *UserModel `gorm:"foreignKey:UserID"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

// EvaluationScoreModel é o model GORM para notas por critério.
// Sem deleted_at: scores são removidos fisicamente.
type EvaluationScoreModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	ReviewID    string `gorm:"type:uuid;not null;index"`
	CriterionID string `gorm:"type:uuid;not null;index;column:criteria_id"`
	Score       int    `gorm:"not null"`

	Criterion *EvaluationCriterionModel `gorm:"foreignKey:CriterionID"`
}

func (EvaluationScoreModel) TableName() string {
	return "evaluation_scores"
}

// InvitationModel é o model GORM para convites de grupo
type InvitationModel struct {
	ID                   string `gorm:"type:uuid;primary_key"`
	ReviewGroupID        string `gorm:"type:uuid;not null;index"`
	InviterID            string `gorm:"type:uuid;not null"`
	InvitedUserDisplayID string `gorm:"type:varchar(8);not null;index"`
	Status               string `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt            int64  `gorm:"autoCreateTime;index"`
	UpdatedAt            int64  `gorm:"autoUpdateTime"`
	DeletedAt            *int64 `gorm:"index"`

	Group   *ReviewGroupModel `gorm:"foreignKey:ReviewGroupID"`
	Inviter *UserModel        `gorm:"foreignKey:InviterID"`
}

func (InvitationModel) TableName() string {
	return "invitations"
}
