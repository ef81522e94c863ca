package params

import (
	"context"
	"time"
)

type Info struct {
	Name string `wsdl:"name"`
	Age  int    `wsdl:"age"`
}

type MockUserWrapper struct {
	ID   int    `wsdl:"id"`
	Name string `wsdl:"name"`
	Age  int    `wsdl:"age"`
}

type AgentNameWithId struct {
	Agent MockUserWrapper `wsdl:"agent"`
	ID    int             `wsdl:"id"`
}

type NamesInfo struct {
	Names []string `wsdl:"names"`
	ID    int      `wsdl:"id"`
}

type Companies struct {
	Name string `wsdl:"name"`
	ID   int    `wsdl:"id"`
}

type ListOfAgents struct {
	Agents []MockUserWrapper `wsdl:"agents,array=Agents"`
	ID     int               `wsdl:"id"`
}

type Names []string

type Base struct {
	ID   int64  `wsdl:"id"`
	Code string `wsdl:"code"`
}

type Audit struct {
	Code string `wsdl:"code"`
}

type Embedded struct {
	Base
	Audit
	Label  *string `wsdl:"label"`
	Note   string  `wsdl:"note,optional"`
	Secret string  `wsdl:"-"`
	hidden string
}

type WithTime struct {
	At time.Time `wsdl:"at"`
}

type Node struct {
	Next *Node `wsdl:"next"`
}

type Grid struct {
	Rows [][]int `wsdl:"rows"`
}

type Service struct{}

func (s *Service) ListAgents(ctx context.Context, list ListOfAgents) error { return nil }

func GetNames(names []string, companies []Companies) {}

func Describe(_ Info, id int) {}

type Loop struct {
	*Loop
	ID int `wsdl:"id"`
}

type LoopA struct {
	*LoopB
	ID int `wsdl:"id"`
}

type LoopB struct {
	*LoopA
	Name string `wsdl:"name"`
}
