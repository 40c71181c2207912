package auth

import (
	"testing"

	"github.com/tradesift-io/tradesift/internal/shared/authorization"
)

func TestJWTIssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.IssuePair(42, authorization.UserTypeCustomer)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Error("access and refresh tokens must differ")
	}

	claims, err := svc.Verify(pair.AccessToken)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.UserType != authorization.UserTypeCustomer {
		t.Errorf("UserType = %q, want customer", claims.UserType)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %q, want access", claims.TokenType)
	}
}

func TestJWTVerifyRejectsWrongSecret(t *testing.T) {
	pair, err := NewJWTService("secret-a", 15, 7).IssuePair(1, authorization.UserTypeAdmin)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	if _, err := NewJWTService("secret-b", 15, 7).Verify(pair.AccessToken); err == nil {
		t.Error("token signed with a different secret must not verify")
	}
}

func TestJWTRefreshRotatesPair(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.IssuePair(7, authorization.UserTypeCustomer)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	fresh, err := svc.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	claims, err := svc.Verify(fresh.AccessToken)
	if err != nil {
		t.Fatalf("Verify refreshed access token: %v", err)
	}
	if claims.UserID != 7 || claims.UserType != authorization.UserTypeCustomer {
		t.Errorf("refreshed claims = %+v, want user 7 customer", claims)
	}
}

func TestJWTRefreshRejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.IssuePair(7, authorization.UserTypeCustomer)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	if _, err := svc.Refresh(pair.AccessToken); err == nil {
		t.Error("access token must not be accepted on the refresh path")
	}
}
