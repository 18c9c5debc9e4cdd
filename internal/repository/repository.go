package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	Interview *InterviewRepository
	Candidate *CandidateRepository
	Client    *ClientRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Interview: &InterviewRepository{db: db},
		Candidate: &CandidateRepository{db: db},
		Client:    &ClientRepository{db: db},
	}
}
