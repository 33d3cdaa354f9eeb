package phrasal

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

type JSONTargetSuite struct {
	suite.Suite
	target Target
}

func (s *JSONTargetSuite) SetupTest() {
	target, err := JSON([]byte(`{
		"name": "John",
		"age": 42,
		"tags": ["a", "b"],
		"dotted.key": true,
		"nested": {"deep": "value"}
	}`))
	s.Require().NoError(err)
	s.target = target
}

func TestJSONTargetSuite(t *testing.T) {
	suite.Run(t, new(JSONTargetSuite))
}

func (s *JSONTargetSuite) TestReturnsErrorForInvalidJSON() {
	_, err := JSON([]byte(`{not valid}`))
	s.Assert().ErrorIs(err, ErrInvalidJSON)
}

func (s *JSONTargetSuite) TestReturnsErrorForEmptyInput() {
	_, err := JSON([]byte{})
	s.Assert().ErrorIs(err, ErrInvalidJSON)
}

func (s *JSONTargetSuite) TestStringMember() {
	v, ok := s.target.Member("name")
	s.Assert().True(ok)
	s.Assert().Equal("John", v)
}

func (s *JSONTargetSuite) TestNumberMember() {
	v, ok := s.target.Member("age")
	s.Assert().True(ok)
	s.Assert().Equal(float64(42), v)
}

func (s *JSONTargetSuite) TestArrayMember() {
	v, ok := s.target.Member("tags")
	s.Assert().True(ok)
	s.Assert().Equal([]any{"a", "b"}, v)
}

func (s *JSONTargetSuite) TestNestedMember() {
	v, ok := s.target.Member("nested")
	s.Assert().True(ok)
	s.Assert().Equal(map[string]any{"deep": "value"}, v)
}

func (s *JSONTargetSuite) TestNameIsNotAPath() {
	v, ok := s.target.Member("dotted.key")
	s.Assert().True(ok)
	s.Assert().Equal(true, v)

	_, ok = s.target.Member("nested.deep")
	s.Assert().False(ok)
}

func (s *JSONTargetSuite) TestMissingMember() {
	_, ok := s.target.Member("missing")
	s.Assert().False(ok)
}

func (s *JSONTargetSuite) TestReceiverIsParsedDocument() {
	r, ok := s.target.Receiver().(gjson.Result)
	s.Require().True(ok)
	s.Assert().Equal("John", r.Get("name").String())
}

type profile struct {
	Name    string
	Nick    string `phrasal:"nick"`
	Secret  string `phrasal:"-"`
	private string
}

func (p profile) Greeting() string { return "hi " + p.Name }

func (p *profile) Rename(name string) { p.Name = name }

type StructTargetSuite struct {
	suite.Suite
	value  *profile
	target Target
}

func (s *StructTargetSuite) SetupTest() {
	s.value = &profile{Name: "John", Nick: "JJ", Secret: "x", private: "y"}
	s.target = Struct(s.value)
}

func TestStructTargetSuite(t *testing.T) {
	suite.Run(t, new(StructTargetSuite))
}

func (s *StructTargetSuite) TestField() {
	v, ok := s.target.Member("Name")
	s.Assert().True(ok)
	s.Assert().Equal("John", v)
}

func (s *StructTargetSuite) TestTaggedField() {
	v, ok := s.target.Member("nick")
	s.Assert().True(ok)
	s.Assert().Equal("JJ", v)

	_, ok = s.target.Member("Nick")
	s.Assert().False(ok)
}

func (s *StructTargetSuite) TestHiddenFields() {
	_, ok := s.target.Member("Secret")
	s.Assert().False(ok)

	_, ok = s.target.Member("private")
	s.Assert().False(ok)
}

func (s *StructTargetSuite) TestValueMethod() {
	v, ok := s.target.Member("Greeting")
	s.Require().True(ok)

	fn, ok := v.(func() string)
	s.Require().True(ok)
	s.Assert().Equal("hi John", fn())
}

func (s *StructTargetSuite) TestPointerMethodIsBound() {
	v, ok := s.target.Member("Rename")
	s.Require().True(ok)

	fn, ok := v.(func(string))
	s.Require().True(ok)
	fn("Joe")
	s.Assert().Equal("Joe", s.value.Name)
}

func (s *StructTargetSuite) TestReceiver() {
	s.Assert().Same(s.value, s.target.Receiver())
}

func (s *StructTargetSuite) TestNonStruct() {
	_, ok := Struct(42).Member("anything")
	s.Assert().False(ok)

	_, ok = Struct(nil).Member("anything")
	s.Assert().False(ok)

	var p *profile
	_, ok = Struct(p).Member("Name")
	s.Assert().False(ok)
}

type MapTargetSuite struct {
	suite.Suite
}

func TestMapTargetSuite(t *testing.T) {
	suite.Run(t, new(MapTargetSuite))
}

func (s *MapTargetSuite) TestMember() {
	m := map[string]any{"foo": "baz", "none": nil}
	target := Map(m)

	v, ok := target.Member("foo")
	s.Assert().True(ok)
	s.Assert().Equal("baz", v)

	v, ok = target.Member("none")
	s.Assert().True(ok)
	s.Assert().Nil(v)

	_, ok = target.Member("missing")
	s.Assert().False(ok)

	s.Assert().Equal(m, target.Receiver())
}

func (s *MapTargetSuite) TestEmpty() {
	_, ok := Empty().Member("foo")
	s.Assert().False(ok)
	s.Assert().Nil(Empty().Receiver())
}
