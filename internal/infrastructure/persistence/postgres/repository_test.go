package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/revibako/backend/internal/domain/entities"
	"github.com/revibako/backend/internal/domain/valueobjects"
)

// setupDB abre um SQLite em memória com o schema migrado.
// Uma única conexão para que todas as queries vejam o mesmo banco.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func seedTestUser(t *testing.T, db *gorm.DB, email, username, handle string) *entities.User {
	t.Helper()

	addr, err := valueobjects.NewEmail(email)
	require.NoError(t, err)

	user := &entities.User{
		Email:     addr,
		Username:  username,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if handle != "" {
		user.DisplayID, err = valueobjects.NewDisplayHandle(handle)
		require.NoError(t, err)
	}

	require.NoError(t, NewUserRepository(db).Upsert(context.Background(), user))
	return user
}

func seedTestCategory(t *testing.T, db *gorm.DB, name string) *entities.Category {
	t.Helper()

	category := &entities.Category{Name: name, Icon: "🎬", OrderIndex: 1}
	require.NoError(t, NewCategoryRepository(db).Seed(context.Background(), []*entities.Category{category}))
	return category
}

func seedTestGroup(t *testing.T, db *gorm.DB, categoryID string, criteriaNames ...string) *entities.ReviewGroup {
	t.Helper()
	ctx := context.Background()
	repo := NewReviewGroupRepository(db)

	group := &entities.ReviewGroup{
		Name:       "映画の会",
		CategoryID: categoryID,
		IsPrivate:  true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(ctx, group))

	criteria := make([]*entities.EvaluationCriterion, 0, len(criteriaNames))
	for i, name := range criteriaNames {
		criteria = append(criteria, &entities.EvaluationCriterion{
			ReviewGroupID: group.ID,
			Name:          name,
			OrderIndex:    i,
		})
	}
	require.NoError(t, repo.CreateCriteria(ctx, criteria))
	return group
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Upsert atualiza registro existente pelo id", func(t *testing.T) {
		db := setupDB(t)
		repo := NewUserRepository(db)
		user := seedTestUser(t, db, "a@example.com", "alice", "123456")

		user.Username = "alicia"
		require.NoError(t, repo.Upsert(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Equal(t, "alicia", found.Username)
		require.Equal(t, "123456", found.DisplayID.String())

		var count int64
		require.NoError(t, db.Model(&UserModel{}).Count(&count).Error)
		require.EqualValues(t, 1, count)
	})

	t.Run("FindByEmail ignora usuários deletados", func(t *testing.T) {
		db := setupDB(t)
		repo := NewUserRepository(db)
		user := seedTestUser(t, db, "a@example.com", "alice", "123456")

		found, err := repo.FindByEmail(ctx, "a@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Equal(t, user.ID, found.ID)

		now := time.Now().Unix()
		require.NoError(t, db.Model(&UserModel{}).Where("id = ?", user.ID).Update("deleted_at", now).Error)

		found, err = repo.FindByEmail(ctx, "a@example.com")
		require.NoError(t, err)
		require.Nil(t, found)
	})

	t.Run("DisplayIDExists", func(t *testing.T) {
		db := setupDB(t)
		repo := NewUserRepository(db)
		seedTestUser(t, db, "a@example.com", "alice", "123456")

		exists, err := repo.DisplayIDExists(ctx, "123456")
		require.NoError(t, err)
		require.True(t, exists)

		exists, err = repo.DisplayIDExists(ctx, "654321")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("FindByDisplayID", func(t *testing.T) {
		db := setupDB(t)
		repo := NewUserRepository(db)
		user := seedTestUser(t, db, "a@example.com", "alice", "123456")

		found, err := repo.FindByDisplayID(ctx, "123456")
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Equal(t, user.ID, found.ID)

		found, err = repo.FindByDisplayID(ctx, "999999")
		require.NoError(t, err)
		require.Nil(t, found)
	})
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewCategoryRepository(db)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)

	require.NoError(t, repo.Seed(ctx, []*entities.Category{
		{Name: "映画", Icon: "🎬", OrderIndex: 2},
		{Name: "ドラマ", Icon: "🎭", OrderIndex: 1},
	}))

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	// Ordenadas por order_index
	require.Equal(t, "ドラマ", categories[0].Name)
	require.Equal(t, "映画", categories[1].Name)
}

func TestReviewGroupRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("FindByID carrega categoria e metadata fields", func(t *testing.T) {
		db := setupDB(t)
		category := seedTestCategory(t, db, "映画")
		repo := NewReviewGroupRepository(db)

		description := "映画好きの集まり"
		group := &entities.ReviewGroup{
			Name:        "映画の会",
			Description: &description,
			CategoryID:  category.ID,
			IsPrivate:   true,
			MetadataFields: []entities.MetadataField{
				{Key: "year", Label: "公開年", Type: "number"},
			},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		require.NoError(t, repo.Create(ctx, group))

		found, err := repo.FindByID(ctx, group.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Equal(t, "映画の会", found.Name)
		require.NotNil(t, found.Description)
		require.NotNil(t, found.Category)
		require.Equal(t, "映画", found.Category.Name)
		require.Len(t, found.MetadataFields, 1)
		require.Equal(t, "year", found.MetadataFields[0].Key)
	})

	t.Run("critérios saem na ordem de criação", func(t *testing.T) {
		db := setupDB(t)
		category := seedTestCategory(t, db, "映画")
		group := seedTestGroup(t, db, category.ID, "ストーリー", "映像", "音楽")

		criteria, err := NewReviewGroupRepository(db).ListCriteria(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, criteria, 3)
		require.Equal(t, "ストーリー", criteria[0].Name)
		require.Equal(t, "音楽", criteria[2].Name)
	})

	t.Run("SoftDelete esconde o grupo das buscas", func(t *testing.T) {
		db := setupDB(t)
		category := seedTestCategory(t, db, "映画")
		group := seedTestGroup(t, db, category.ID)
		repo := NewReviewGroupRepository(db)

		require.NoError(t, repo.SoftDelete(ctx, group.ID, time.Now()))

		found, err := repo.FindByID(ctx, group.ID)
		require.NoError(t, err)
		require.Nil(t, found)
	})
}

func TestMembershipRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	category := seedTestCategory(t, db, "映画")
	group := seedTestGroup(t, db, category.ID)
	owner := seedTestUser(t, db, "o@example.com", "owner", "111111")
	member := seedTestUser(t, db, "m@example.com", "member", "222222")
	repo := NewMembershipRepository(db)

	require.NoError(t, repo.Create(ctx, &entities.Membership{
		ReviewGroupID: group.ID,
		UserID:        owner.ID,
		Role:          entities.RoleOwner,
	}))
	require.NoError(t, repo.Create(ctx, &entities.Membership{
		ReviewGroupID: group.ID,
		UserID:        member.ID,
		Role:          entities.RoleMember,
	}))

	t.Run("FindActive retorna vínculo vivo", func(t *testing.T) {
		membership, err := repo.FindActive(ctx, group.ID, owner.ID)
		require.NoError(t, err)
		require.NotNil(t, membership)
		require.Equal(t, entities.RoleOwner, membership.Role)
	})

	t.Run("ListByGroup preenche usuários", func(t *testing.T) {
		memberships, err := repo.ListByGroup(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, memberships, 2)
		for _, m := range memberships {
			require.NotNil(t, m.User)
		}
	})

	t.Run("ListByUser omite grupos deletados", func(t *testing.T) {
		memberships, err := repo.ListByUser(ctx, member.ID)
		require.NoError(t, err)
		require.Len(t, memberships, 1)
		require.NotNil(t, memberships[0].Group)

		require.NoError(t, NewReviewGroupRepository(db).SoftDelete(ctx, group.ID, time.Now()))

		memberships, err = repo.ListByUser(ctx, member.ID)
		require.NoError(t, err)
		require.Empty(t, memberships)
	})
}

func TestInvitationRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	category := seedTestCategory(t, db, "映画")
	group := seedTestGroup(t, db, category.ID)
	inviter := seedTestUser(t, db, "o@example.com", "owner", "111111")
	repo := NewInvitationRepository(db)

	invitation := &entities.Invitation{
		ReviewGroupID:        group.ID,
		InviterID:            inviter.ID,
		InvitedUserDisplayID: "222222",
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}
	require.NoError(t, repo.Create(ctx, invitation))
	require.Equal(t, entities.InvitationPending, invitation.Status)

	t.Run("FindPending localiza convite aberto", func(t *testing.T) {
		found, err := repo.FindPending(ctx, group.ID, "222222")
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Equal(t, invitation.ID, found.ID)
	})

	t.Run("ListPendingByDisplayID preenche grupo e remetente", func(t *testing.T) {
		pending, err := repo.ListPendingByDisplayID(ctx, "222222")
		require.NoError(t, err)
		require.Len(t, pending, 1)
		require.NotNil(t, pending[0].Group)
		require.NotNil(t, pending[0].Inviter)
		require.Equal(t, "owner", pending[0].Inviter.Username)
	})

	t.Run("convite respondido sai da lista de pendentes", func(t *testing.T) {
		invitation.Status = entities.InvitationDeclined
		require.NoError(t, repo.Update(ctx, invitation))

		found, err := repo.FindPending(ctx, group.ID, "222222")
		require.NoError(t, err)
		require.Nil(t, found)

		pending, err := repo.ListPendingByDisplayID(ctx, "222222")
		require.NoError(t, err)
		require.Empty(t, pending)
	})
}

func TestReviewRepositoryScores(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	category := seedTestCategory(t, db, "映画")
	group := seedTestGroup(t, db, category.ID, "ストーリー", "映像")
	user := seedTestUser(t, db, "m@example.com", "member", "111111")

	criteria, err := NewReviewGroupRepository(db).ListCriteria(ctx, group.ID)
	require.NoError(t, err)

	subject := &entities.ReviewSubject{
		ReviewGroupID: group.ID,
		Name:          "ある映画",
		CreatedBy:     user.ID,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	require.NoError(t, NewSubjectRepository(db).Create(ctx, subject))

	repo := NewReviewRepository(db)
	review := &entities.Review{
		ReviewSubjectID: subject.ID,
		UserID:          user.ID,
		TotalScore:      4.5,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	require.NoError(t, repo.Create(ctx, review))
	require.NoError(t, repo.CreateScores(ctx, []*entities.EvaluationScore{
		{ReviewID: review.ID, CriterionID: criteria[0].ID, Score: 5},
		{ReviewID: review.ID, CriterionID: criteria[1].ID, Score: 4},
	}))

	t.Run("ListScores resolve nome do critério", func(t *testing.T) {
		scores, err := repo.ListScores(ctx, review.ID)
		require.NoError(t, err)
		require.Len(t, scores, 2)

		byName := make(map[string]int)
		for _, s := range scores {
			byName[s.CriterionName] = s.Score
		}
		require.Equal(t, 5, byName["ストーリー"])
		require.Equal(t, 4, byName["映像"])
	})

	t.Run("FindActive só enxerga review viva", func(t *testing.T) {
		found, err := repo.FindActive(ctx, subject.ID, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found)

		require.NoError(t, repo.SoftDelete(ctx, review.ID, time.Now()))

		found, err = repo.FindActive(ctx, subject.ID, user.ID)
		require.NoError(t, err)
		require.Nil(t, found)
	})

	t.Run("DeleteScores remove as linhas fisicamente", func(t *testing.T) {
		require.NoError(t, repo.DeleteScores(ctx, review.ID))

		var count int64
		require.NoError(t, db.Model(&EvaluationScoreModel{}).Count(&count).Error)
		require.EqualValues(t, 0, count)
	})
}

// Reproduz a sequência de exclusão de grupo executada pelo GroupService
// dentro da transação: scores fora, resto com soft delete.
func TestGroupCascadeSequence(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	category := seedTestCategory(t, db, "映画")
	group := seedTestGroup(t, db, category.ID, "総合")
	user := seedTestUser(t, db, "m@example.com", "member", "111111")

	groupRepo := NewReviewGroupRepository(db)
	membershipRepo := NewMembershipRepository(db)
	subjectRepo := NewSubjectRepository(db)
	reviewRepo := NewReviewRepository(db)

	require.NoError(t, membershipRepo.Create(ctx, &entities.Membership{
		ReviewGroupID: group.ID,
		UserID:        user.ID,
		Role:          entities.RoleOwner,
	}))

	criteria, err := groupRepo.ListCriteria(ctx, group.ID)
	require.NoError(t, err)

	subject := &entities.ReviewSubject{
		ReviewGroupID: group.ID,
		Name:          "ある映画",
		CreatedBy:     user.ID,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	require.NoError(t, subjectRepo.Create(ctx, subject))

	review := &entities.Review{
		ReviewSubjectID: subject.ID,
		UserID:          user.ID,
		TotalScore:      3,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	require.NoError(t, reviewRepo.Create(ctx, review))
	require.NoError(t, reviewRepo.CreateScores(ctx, []*entities.EvaluationScore{
		{ReviewID: review.ID, CriterionID: criteria[0].ID, Score: 3},
	}))

	now := time.Now()
	subjectIDs, err := subjectRepo.ListIDsByGroup(ctx, group.ID)
	require.NoError(t, err)
	reviewIDs, err := reviewRepo.ListActiveIDsBySubjects(ctx, subjectIDs)
	require.NoError(t, err)
	require.NoError(t, reviewRepo.DeleteScoresByReviews(ctx, reviewIDs))
	require.NoError(t, reviewRepo.SoftDeleteByIDs(ctx, reviewIDs, now))
	require.NoError(t, subjectRepo.SoftDeleteByGroup(ctx, group.ID, now))
	require.NoError(t, groupRepo.SoftDeleteCriteriaByGroup(ctx, group.ID, now))
	require.NoError(t, membershipRepo.SoftDeleteByGroup(ctx, group.ID, now))
	require.NoError(t, groupRepo.SoftDelete(ctx, group.ID, now))

	var scoreCount int64
	require.NoError(t, db.Model(&EvaluationScoreModel{}).Count(&scoreCount).Error)
	require.EqualValues(t, 0, scoreCount)

	found, err := groupRepo.FindByID(ctx, group.ID)
	require.NoError(t, err)
	require.Nil(t, found)

	foundSubject, err := subjectRepo.FindByID(ctx, group.ID, subject.ID)
	require.NoError(t, err)
	require.Nil(t, foundSubject)

	foundReview, err := reviewRepo.FindActive(ctx, subject.ID, user.ID)
	require.NoError(t, err)
	require.Nil(t, foundReview)

	membership, err := membershipRepo.FindActive(ctx, group.ID, user.ID)
	require.NoError(t, err)
	require.Nil(t, membership)

	remaining, err := groupRepo.ListCriteria(ctx, group.ID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	// Linhas continuam no banco, só marcadas
	var model ReviewSubjectModel
	require.NoError(t, db.Unscoped().Where("id = ?", subject.ID).First(&model).Error)
	require.NotNil(t, model.DeletedAt)
}
