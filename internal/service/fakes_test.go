package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/quangdng/talentgate/internal/model"
	"github.com/quangdng/talentgate/internal/repository"
)

// In-memory repository fakes. IDs are assigned sequentially like the
// database's serial column would.

type fakeApplicationRepo struct {
	created   []model.Application
	createErr error
	nextID    uint
}

func (f *fakeApplicationRepo) Create(a *model.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	a.ID = f.nextID
	a.CreatedAt = time.Now()
	f.created = append(f.created, *a)
	return nil
}

type fakeApplicantRepo struct {
	applicants map[uint]model.Applicant
	createErr  error
	nextID     uint
}

func newFakeApplicantRepo() *fakeApplicantRepo {
	return &fakeApplicantRepo{applicants: make(map[uint]model.Applicant)}
}

func (f *fakeApplicantRepo) Create(a *model.Applicant) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	a.ID = f.nextID
	a.CreatedAt = time.Now()
	f.applicants[a.ID] = *a
	return nil
}

func (f *fakeApplicantRepo) FindByID(id uint) (*model.Applicant, error) {
	a, ok := f.applicants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (f *fakeApplicantRepo) FindByIDs(ids []uint) ([]model.Applicant, error) {
	var out []model.Applicant
	for _, id := range ids {
		if a, ok := f.applicants[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeFormRepo struct {
	forms     map[uint]model.Form
	createErr error
	deleted   []uint
	nextID    uint
}

func newFakeFormRepo() *fakeFormRepo {
	return &fakeFormRepo{forms: make(map[uint]model.Form)}
}

func (f *fakeFormRepo) Create(form *model.Form) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	form.ID = f.nextID
	form.CreatedAt = time.Now()
	f.forms[form.ID] = *form
	return nil
}

func (f *fakeFormRepo) FindByID(id uint) (*model.Form, error) {
	form, ok := f.forms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &form, nil
}

func (f *fakeFormRepo) FindByIDWithQuestions(id uint) (*model.Form, error) {
	return f.FindByID(id)
}

func (f *fakeFormRepo) FindAllWithQuestionCount() ([]repository.FormWithQuestionCount, error) {
	var out []repository.FormWithQuestionCount
	for _, form := range f.forms {
		out = append(out, repository.FormWithQuestionCount{
			Form:          form,
			QuestionCount: len(form.Questions),
		})
	}
	return out, nil
}

func (f *fakeFormRepo) Delete(id uint) error {
	delete(f.forms, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeQuestionRepo struct {
	questions []model.Question
	createErr error
	deleted   []uint
	nextID    uint
}

func (f *fakeQuestionRepo) Create(q *model.Question) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	q.ID = f.nextID
	f.questions = append(f.questions, *q)
	return nil
}

func (f *fakeQuestionRepo) FindByFormID(formID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.FormID == formID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) DeleteByFormID(formID uint) error {
	f.deleted = append(f.deleted, formID)
	var kept []model.Question
	for _, q := range f.questions {
		if q.FormID != formID {
			kept = append(kept, q)
		}
	}
	f.questions = kept
	return nil
}

type fakeAnswerRepo struct {
	answers []model.Answer
	// failAt makes the Nth Create call fail (1-based); 0 disables.
	failAt    int
	createErr error
	calls     int
	nextID    uint
}

func (f *fakeAnswerRepo) Create(a *model.Answer) error {
	f.calls++
	if f.failAt != 0 && f.calls == f.failAt {
		return f.createErr
	}
	f.nextID++
	a.ID = f.nextID
	a.CreatedAt = time.Now()
	f.answers = append(f.answers, *a)
	return nil
}

func (f *fakeAnswerRepo) FindByApplicantAndQuestionIDs(applicantID uint, questionIDs []uint) ([]model.Answer, error) {
	inSet := make(map[uint]bool, len(questionIDs))
	for _, id := range questionIDs {
		inSet[id] = true
	}
	var out []model.Answer
	for _, a := range f.answers {
		if a.ApplicantID == applicantID && inSet[a.QuestionID] {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnswerRepo) FindEntriesByQuestionIDs(questionIDs []uint) ([]repository.EntryRow, error) {
	inSet := make(map[uint]bool, len(questionIDs))
	for _, id := range questionIDs {
		inSet[id] = true
	}
	earliest := make(map[uint]time.Time)
	for _, a := range f.answers {
		if !inSet[a.QuestionID] {
			continue
		}
		if t, ok := earliest[a.ApplicantID]; !ok || a.CreatedAt.Before(t) {
			earliest[a.ApplicantID] = a.CreatedAt
		}
	}
	var rows []repository.EntryRow
	for applicantID, t := range earliest {
		rows = append(rows, repository.EntryRow{ApplicantID: applicantID, SubmittedAt: t})
	}
	return rows, nil
}
