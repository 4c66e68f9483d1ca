package services

import (
	"errors"
	"testing"

	"github.com/Alisina10/Online-Poll-System/models"
)

func TestCastVote(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	voter := createTestUser(t, db, "voter")
	poll := createTestPoll(t, db, owner.ID)

	service := NewVoteService(db)
	vote, err := service.CastVote(voter.ID, poll.ID, "Red")
	if err != nil {
		t.Fatalf("голос не принят: %v", err)
	}
	if vote.SelectedOption != "Red" || vote.PollID != poll.ID || vote.UserID != voter.ID {
		t.Fatalf("записан неверный голос: %+v", vote)
	}
}

func TestCastVotePollNotFound(t *testing.T) {
	db := setupTestDB(t)
	voter := createTestUser(t, db, "voter")

	service := NewVoteService(db)
	if _, err := service.CastVote(voter.ID, 9999, "Red"); !errors.Is(err, ErrPollNotFound) {
		t.Fatalf("ожидалась ErrPollNotFound, получено %v", err)
	}
}

func TestCastVoteEmptyOption(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	poll := createTestPoll(t, db, owner.ID)

	service := NewVoteService(db)
	if _, err := service.CastVote(owner.ID, poll.ID, ""); !errors.Is(err, ErrEmptyOption) {
		t.Fatalf("ожидалась ErrEmptyOption, получено %v", err)
	}

	// Запись не создана
	var count int64
	db.Model(&models.Vote{}).Count(&count)
	if count != 0 {
		t.Fatalf("пустой голос попал в базу, записей: %d", count)
	}
}

func TestCastVoteTwiceRefused(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	voter := createTestUser(t, db, "voter")
	poll := createTestPoll(t, db, owner.ID)

	service := NewVoteService(db)
	if _, err := service.CastVote(voter.ID, poll.ID, "Red"); err != nil {
		t.Fatalf("первый голос не принят: %v", err)
	}

	// Повторный голос отклоняется, даже за другой вариант
	if _, err := service.CastVote(voter.ID, poll.ID, "Blue"); !errors.Is(err, ErrAlreadyVoted) {
		t.Fatalf("ожидалась ErrAlreadyVoted, получено %v", err)
	}

	var count int64
	db.Model(&models.Vote{}).Where("user_id = ? AND poll_id = ?", voter.ID, poll.ID).Count(&count)
	if count != 1 {
		t.Fatalf("у пары (user, poll) ожидался ровно 1 голос, найдено %d", count)
	}
}

func TestCastVoteUnknownOptionStoredVerbatim(t *testing.T) {
	// Текст варианта не сверяется со списком вариантов опроса:
	// такой голос сохраняется, но в подсчёт не попадает
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	voter := createTestUser(t, db, "voter")
	poll := createTestPoll(t, db, owner.ID)

	service := NewVoteService(db)
	vote, err := service.CastVote(voter.ID, poll.ID, "Chartreuse")
	if err != nil {
		t.Fatalf("голос не принят: %v", err)
	}
	if vote.SelectedOption != "Chartreuse" {
		t.Fatalf("текст голоса изменён: %q", vote.SelectedOption)
	}

	_, result, err := NewResultService(db).GetResult(poll.ID)
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}
	if result.TotalVotes != 0 {
		t.Fatalf("голос за неизвестный вариант учтён: %+v", result)
	}
}

func TestHasVoted(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	voter := createTestUser(t, db, "voter")
	poll := createTestPoll(t, db, owner.ID)

	service := NewVoteService(db)
	voted, err := service.HasVoted(voter.ID, poll.ID)
	if err != nil {
		t.Fatalf("HasVoted: %v", err)
	}
	if voted {
		t.Fatal("пользователь ещё не голосовал")
	}

	if _, err := service.CastVote(voter.ID, poll.ID, "Red"); err != nil {
		t.Fatalf("голос не принят: %v", err)
	}

	voted, err = service.HasVoted(voter.ID, poll.ID)
	if err != nil {
		t.Fatalf("HasVoted: %v", err)
	}
	if !voted {
		t.Fatal("голос не найден")
	}
}
