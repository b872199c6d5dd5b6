package service

import (
	"sort"

	"github.com/yacinebd/scolaris/internal/model"
	"github.com/yacinebd/scolaris/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes so the lifecycle services can be exercised
// without a database. They return gorm.ErrRecordNotFound like the real ones
// so the not-found translation paths are covered too.

type fakeStore struct {
	lastID    uint
	classes   map[uint]*model.Class
	students  map[uint]*model.Student
	modules   map[uint]*model.Module
	quizzes   map[uint]*model.Quiz
	questions map[uint][]model.Question // keyed by quiz id
	attempts  map[uint]*model.Attempt
	answers   []model.Answer
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		classes:   map[uint]*model.Class{},
		students:  map[uint]*model.Student{},
		modules:   map[uint]*model.Module{},
		quizzes:   map[uint]*model.Quiz{},
		questions: map[uint][]model.Question{},
		attempts:  map[uint]*model.Attempt{},
	}
}

func (s *fakeStore) id() uint {
	s.lastID++
	return s.lastID
}

type fakeModuleRepo struct{ s *fakeStore }

func (r *fakeModuleRepo) Create(m *model.Module) error {
	m.ID = r.s.id()
	r.s.modules[m.ID] = m
	return nil
}

func (r *fakeModuleRepo) FindByID(id uint) (*model.Module, error) {
	if m, ok := r.s.modules[id]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeModuleRepo) FindByIDWithClasses(id uint) (*model.Module, error) {
	return r.FindByID(id)
}

func (r *fakeModuleRepo) FindAll() ([]model.Module, error) {
	var modules []model.Module
	for _, m := range r.s.modules {
		modules = append(modules, *m)
	}
	return modules, nil
}

func (r *fakeModuleRepo) Update(m *model.Module) error {
	r.s.modules[m.ID] = m
	return nil
}

func (r *fakeModuleRepo) ReplaceClasses(m *model.Module, classes []model.Class) error {
	m.Classes = classes
	return nil
}

type fakeQuizRepo struct{ s *fakeStore }

func (r *fakeQuizRepo) Create(q *model.Quiz) error {
	q.ID = r.s.id()
	for i := range q.Questions {
		q.Questions[i].ID = r.s.id()
		q.Questions[i].QuizID = q.ID
	}
	r.s.quizzes[q.ID] = q
	r.s.questions[q.ID] = q.Questions
	return nil
}

func (r *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	if q, ok := r.s.quizzes[id]; ok {
		return q, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeQuizRepo) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	quiz, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	quiz.Questions = r.s.questions[id]
	return quiz, nil
}

func (r *fakeQuizRepo) FindAllByModule(moduleID uint) ([]repository.QuizWithQuestionCount, error) {
	var results []repository.QuizWithQuestionCount
	for _, q := range r.s.quizzes {
		if q.ModuleID == moduleID {
			results = append(results, repository.QuizWithQuestionCount{Quiz: *q, QuestionCount: len(r.s.questions[q.ID])})
		}
	}
	return results, nil
}

func (r *fakeQuizRepo) FindVisibleToClass(classID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	for _, q := range r.s.quizzes {
		module, ok := r.s.modules[q.ModuleID]
		if !ok || !q.Published || !module.Published {
			continue
		}
		for _, c := range module.Classes {
			if c.ID == classID {
				quizzes = append(quizzes, *q)
				break
			}
		}
	}
	sort.Slice(quizzes, func(i, j int) bool { return quizzes[i].DisplayOrder < quizzes[j].DisplayOrder })
	return quizzes, nil
}

func (r *fakeQuizRepo) Update(q *model.Quiz) error {
	r.s.quizzes[q.ID] = q
	return nil
}

func (r *fakeQuizRepo) Delete(id uint) error {
	delete(r.s.quizzes, id)
	delete(r.s.questions, id)
	return nil
}

type fakeQuestionRepo struct{ s *fakeStore }

func (r *fakeQuestionRepo) Create(q *model.Question) error {
	q.ID = r.s.id()
	for i := range q.Choices {
		q.Choices[i].ID = r.s.id()
		q.Choices[i].QuestionID = q.ID
	}
	r.s.questions[q.QuizID] = append(r.s.questions[q.QuizID], *q)
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	for _, questions := range r.s.questions {
		for i := range questions {
			if questions[i].ID == id {
				return &questions[i], nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeQuestionRepo) FindByIDWithChoices(id uint) (*model.Question, error) {
	return r.FindByID(id)
}

func (r *fakeQuestionRepo) FindByQuizID(quizID uint) ([]model.Question, error) {
	questions := append([]model.Question(nil), r.s.questions[quizID]...)
	sort.SliceStable(questions, func(i, j int) bool { return questions[i].DisplayOrder < questions[j].DisplayOrder })
	return questions, nil
}

func (r *fakeQuestionRepo) Delete(id uint) error {
	for quizID, questions := range r.s.questions {
		for i := range questions {
			if questions[i].ID == id {
				r.s.questions[quizID] = append(questions[:i], questions[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

type fakeAttemptRepo struct{ s *fakeStore }

func (r *fakeAttemptRepo) Create(a *model.Attempt) error {
	a.ID = r.s.id()
	r.s.attempts[a.ID] = a
	return nil
}

func (r *fakeAttemptRepo) Update(a *model.Attempt) error {
	r.s.attempts[a.ID] = a
	return nil
}

func (r *fakeAttemptRepo) FindByID(id uint) (*model.Attempt, error) {
	if a, ok := r.s.attempts[id]; ok {
		saved := *a
		return &saved, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAttemptRepo) FindByIDWithAnswers(id uint) (*model.Attempt, error) {
	attempt, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	attempt.Answers = r.answersOf(id)
	return attempt, nil
}

func (r *fakeAttemptRepo) FindByIDWithDetails(id uint) (*model.Attempt, error) {
	attempt, err := r.FindByIDWithAnswers(id)
	if err != nil {
		return nil, err
	}
	if quiz, ok := r.s.quizzes[attempt.QuizID]; ok {
		attempt.Quiz = *quiz
	}
	if student, ok := r.s.students[attempt.StudentID]; ok {
		attempt.Student = *student
	}
	return attempt, nil
}

func (r *fakeAttemptRepo) FindInProgress(quizID, studentID uint) (*model.Attempt, error) {
	for _, a := range r.s.attempts {
		if a.QuizID == quizID && a.StudentID == studentID && !a.Completed {
			open := *a
			return &open, nil
		}
	}
	return nil, nil
}

func (r *fakeAttemptRepo) FindAllByQuiz(quizID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	for _, a := range r.s.attempts {
		if a.QuizID == quizID {
			attempts = append(attempts, *a)
		}
	}
	return attempts, nil
}

func (r *fakeAttemptRepo) FindAllByStudent(studentID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	for _, a := range r.s.attempts {
		if a.StudentID == studentID {
			attempts = append(attempts, *a)
		}
	}
	sort.Slice(attempts, func(i, j int) bool { return attempts[i].StartedAt.After(attempts[j].StartedAt) })
	return attempts, nil
}

func (r *fakeAttemptRepo) answersOf(attemptID uint) []model.Answer {
	var answers []model.Answer
	for _, a := range r.s.answers {
		if a.AttemptID == attemptID {
			answers = append(answers, a)
		}
	}
	return answers
}

type fakeAnswerRepo struct{ s *fakeStore }

func (r *fakeAnswerRepo) FindByAttemptID(attemptID uint) ([]model.Answer, error) {
	var answers []model.Answer
	for _, a := range r.s.answers {
		if a.AttemptID == attemptID {
			answers = append(answers, a)
		}
	}
	return answers, nil
}

type fakeStudentRepo struct{ s *fakeStore }

func (r *fakeStudentRepo) Create(st *model.Student) error {
	st.ID = r.s.id()
	r.s.students[st.ID] = st
	return nil
}

func (r *fakeStudentRepo) FindByID(id uint) (*model.Student, error) {
	if st, ok := r.s.students[id]; ok {
		return st, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) FindAllByClass(classID uint) ([]model.Student, error) {
	var students []model.Student
	for _, st := range r.s.students {
		if st.ClassID == classID {
			students = append(students, *st)
		}
	}
	return students, nil
}

type fakeClassRepo struct{ s *fakeStore }

func (r *fakeClassRepo) Create(c *model.Class) error {
	c.ID = r.s.id()
	r.s.classes[c.ID] = c
	return nil
}

func (r *fakeClassRepo) FindAll() ([]model.Class, error) {
	var classes []model.Class
	for _, c := range r.s.classes {
		classes = append(classes, *c)
	}
	return classes, nil
}

func (r *fakeClassRepo) FindByIDs(ids []uint) ([]model.Class, error) {
	var classes []model.Class
	for _, id := range ids {
		if c, ok := r.s.classes[id]; ok {
			classes = append(classes, *c)
		}
	}
	return classes, nil
}

// interface conformance
var (
	_ repository.ModuleRepository   = (*fakeModuleRepo)(nil)
	_ repository.QuizRepository     = (*fakeQuizRepo)(nil)
	_ repository.QuestionRepository = (*fakeQuestionRepo)(nil)
	_ repository.AttemptRepository  = (*fakeAttemptRepo)(nil)
	_ repository.AnswerRepository   = (*fakeAnswerRepo)(nil)
	_ repository.StudentRepository  = (*fakeStudentRepo)(nil)
	_ repository.ClassRepository    = (*fakeClassRepo)(nil)
)
