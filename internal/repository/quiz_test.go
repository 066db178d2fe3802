package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/mwhitley/capquiz/internal/models"
	mock_repository "github.com/mwhitley/capquiz/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *QuizR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &QuizR{db: db}
}

func TestQuizR_CreateQuiz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    int64
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(execResult{id: 3}, nil)
			},
			want:    3,
			wantErr: false,
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizR := newQuizMock(t, ctrl, tt.f)

			got, err := quizR.CreateQuiz(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuizR_StoreQuizQuestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(execResult{id: 1}, nil)
			},
			wantErr: false,
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizR := newQuizMock(t, ctrl, tt.f)

			err := quizR.StoreQuizQuestion(context.Background(), 1, 2, "Atlanta")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestQuizR_UpdateQuizProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		lastAnswer string
		f          func(*mock_repository.MockQueryI)
		wantErr    bool
	}{
		{
			name:       "success",
			lastAnswer: "Atlanta",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), 2, 3, sql.NullString{String: "Atlanta", Valid: true}, int64(1)).
					Return(execResult{id: 1}, nil)
			},
			wantErr: false,
		},
		{
			name:       "empty last answer stored as null",
			lastAnswer: "",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), 2, 3, sql.NullString{}, int64(1)).
					Return(execResult{id: 1}, nil)
			},
			wantErr: false,
		},
		{
			name:       "failed exec",
			lastAnswer: "Atlanta",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizR := newQuizMock(t, ctrl, tt.f)

			err := quizR.UpdateQuizProgress(context.Background(), 1, 2, 3, tt.lastAnswer)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestQuizR_QuizInProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.Quiz
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), models.QuestionsPerQuiz).DoAndReturn(
					func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						quiz := dest.(*models.Quiz)
						*quiz = models.Quiz{ID: 5, Date: "2026-01-02 10:00:00", Score: 1, QuestionsAnswered: 2}
						return nil
					})
			},
			want: models.Quiz{ID: 5, Date: "2026-01-02 10:00:00", Score: 1, QuestionsAnswered: 2},
		},
		{
			name: "no resumable quiz",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			wantErr: sql.ErrNoRows,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizR := newQuizMock(t, ctrl, tt.f)

			got, err := quizR.QuizInProgress(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuizR_QuizStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    []models.State
		wantErr bool
	}{
		{
			name: "success preserves order",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(5)).DoAndReturn(
					func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						states := dest.(*[]models.State)
						*states = append(*states,
							models.State{ID: 2, Name: "Georgia", Capital: "Atlanta"},
							models.State{ID: 9, Name: "Ohio", Capital: "Columbus"},
						)
						return nil
					})
			},
			want: []models.State{
				{ID: 2, Name: "Georgia", Capital: "Atlanta"},
				{ID: 9, Name: "Ohio", Capital: "Columbus"},
			},
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizR := newQuizMock(t, ctrl, tt.f)

			got, err := quizR.QuizStates(context.Background(), 5)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuizR_PastResults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    []models.QuizResult
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						results := dest.(*[]models.QuizResult)
						*results = append(*results,
							models.QuizResult{ID: 2, Date: "2026-01-02 10:00:00", Score: 6},
							models.QuizResult{ID: 1, Date: "2026-01-01 10:00:00", Score: 4},
						)
						return nil
					})
			},
			want: []models.QuizResult{
				{ID: 2, Date: "2026-01-02 10:00:00", Score: 6},
				{ID: 1, Date: "2026-01-01 10:00:00", Score: 4},
			},
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizR := newQuizMock(t, ctrl, tt.f)

			got, err := quizR.PastResults(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuizR_QuizStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.QuizStats
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			want:    models.QuizStats{},
			wantErr: false,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizR := newQuizMock(t, ctrl, tt.f)

			got, err := quizR.QuizStats(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
