package models_test

import (
	"github.com/finsmart/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := suite.createTestUser(models.User{
		Name:  "  Ada  ",
		Email: " Ada@Example.COM ",
	})

	assert.Equal(suite.T(), "Ada", user.Name)
	assert.Equal(suite.T(), "ada@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	suite.createTestUser(models.User{Email: "ada@example.com"})

	second := models.User{Email: "ADA@example.com"}
	_ = second.SetPassword("another password entirely")

	err := models.DB.Create(&second).Error
	assert.NotNil(suite.T(), err, "saving a second user with the same email must fail")
}

func (suite *TestSuiteStandard) TestUserPassword() {
	user := models.User{}
	assert.Nil(suite.T(), user.SetPassword("correct horse battery staple"))

	assert.NotContains(suite.T(), user.PasswordHash, "correct horse")
	assert.True(suite.T(), user.CheckPassword("correct horse battery staple"))
	assert.False(suite.T(), user.CheckPassword("incorrect horse"))
}

func (suite *TestSuiteStandard) TestUserByEmail() {
	created := suite.createTestUser(models.User{Email: "ada@example.com"})

	user, err := models.UserByEmail(models.DB, " ADA@example.com ")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), created.ID, user.ID)

	_, err = models.UserByEmail(models.DB, "nobody@example.com")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	_, err := models.UserByEmail(models.DB, "nobody@example.com")
	assert.ErrorContains(suite.T(), err, "there is no user matching your query")
}
