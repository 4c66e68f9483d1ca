package utils

import "testing"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(42)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if token == "" {
		t.Fatal("получен пустой токен")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "42" {
		t.Fatalf("subject = %q, ожидалось \"42\"", claims.Subject)
	}

	userID, err := ExtractUserIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractUserIDFromToken: %v", err)
	}
	if userID != 42 {
		t.Fatalf("userID = %d, ожидалось 42", userID)
	}
}

func TestJWTSecretReadAfterInit(t *testing.T) {
	// Секрет, появившийся в окружении после инициализации пакета
	// (так его выставляет godotenv.Load в main), должен подписывать токены
	t.Setenv("JWT_SECRET", "configured-secret")

	token, err := GenerateJWT(7)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ValidateToken(token); err != nil {
		t.Fatalf("токен с секретом из окружения отклонён: %v", err)
	}

	// Со сменой секрета старая подпись перестаёт приниматься
	t.Setenv("JWT_SECRET", "rotated-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("токен с устаревшей подписью принят")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("мусорный токен принят")
	}
	if _, err := ExtractUserIDFromToken(""); err == nil {
		t.Fatal("пустой токен принят")
	}
}
