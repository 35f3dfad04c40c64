package jwt_test

import (
	"time"

	tokenIssuer "gotodo/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service   *tokenIssuer.JWTService
		tokenInfo tokenIssuer.TokenInfo
		now       time.Time
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		now = time.Now()
		tokenIssuer.TimeNow = func() time.Time { return now }

		tokenInfo = tokenIssuer.TokenInfo{
			UserID:     42,
			Username:   "testuser",
			Expiration: 24,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate and Sign", func() {
		It("should produce a token carrying the user claims", func() {
			token := service.Generate(tokenInfo)
			claims, ok := token.Claims.(jwt.MapClaims)
			Expect(ok).To(BeTrue())
			Expect(claims["sub"]).To(Equal("42"))
			Expect(claims["username"]).To(Equal("testuser"))
			Expect(claims["iat"]).To(Equal(now.Unix()))
			Expect(claims["exp"]).To(Equal(now.Add(24 * time.Hour).Unix()))

			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())
		})
	})

	Describe("Validate", func() {
		var signed string

		BeforeEach(func() {
			token := service.Generate(tokenInfo)
			var err error
			signed, err = service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
		})

		When("the token is valid", func() {
			It("should return the claims", func() {
				claims, err := service.Validate(signed)
				Expect(err).NotTo(HaveOccurred())
				Expect(claims["sub"]).To(Equal("42"))
				Expect(claims["username"]).To(Equal("testuser"))
			})
		})

		When("the token has expired", func() {
			It("should return token expired error", func() {
				tokenIssuer.TimeNow = func() time.Time { return now.Add(25 * time.Hour) }

				_, err := service.Validate(signed)
				Expect(err).To(HaveOccurred())
			})
		})

		When("the token is signed with a different secret", func() {
			It("should return token not valid error", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				foreign, err := other.Sign(other.Generate(tokenInfo))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(foreign)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is garbage", func() {
			It("should return token not valid error", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})

	Describe("Subject", func() {
		It("should parse the numeric user id", func() {
			userId, err := tokenIssuer.Subject(jwt.MapClaims{"sub": "42"})
			Expect(err).NotTo(HaveOccurred())
			Expect(userId).To(Equal(uint64(42)))
		})

		When("the sub claim is missing", func() {
			It("should return token not valid error", func() {
				_, err := tokenIssuer.Subject(jwt.MapClaims{})
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the sub claim is not numeric", func() {
			It("should return token not valid error", func() {
				_, err := tokenIssuer.Subject(jwt.MapClaims{"sub": "abc"})
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})
})
