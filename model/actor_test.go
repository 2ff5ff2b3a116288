package model

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const fillion = `<Actor>
  <id>79415</id>
  <Image>actors/79415.jpg</Image>
  <Name>Nathan Fillion</Name>
  <Role>Richard Castle</Role>
  <SortOrder>0</SortOrder>
</Actor>`

func TestActor(t *testing.T) {
	Convey("Given a new actor", t, func() {
		actor := NewActor()

		Convey("It starts at the sentinels", func() {
			So(actor.ID, ShouldEqual, -1)
			So(actor.SortOrder, ShouldEqual, -1)
			So(actor.Name, ShouldBeEmpty)
		})

		Convey("A nil node is rejected with a stable error", func() {
			first := actor.Deserialize(nil)
			second := actor.Deserialize(nil)
			So(first, ShouldEqual, ErrNilNode)
			So(first.Error(), ShouldEqual, second.Error())
		})

		Convey("A full node maps every element", func() {
			So(actor.Deserialize(parse(fillion)), ShouldBeNil)
			So(actor.ID, ShouldEqual, 79415)
			So(actor.ImagePath, ShouldEqual, "actors/79415.jpg")
			So(actor.Name, ShouldEqual, "Nathan Fillion")
			So(actor.Role, ShouldEqual, "Richard Castle")
			So(actor.SortOrder, ShouldEqual, 0)
			So(actor.String(), ShouldEqual, "Nathan Fillion as Richard Castle")
		})

		Convey("Absent elements keep their defaults", func() {
			So(actor.Deserialize(parse(`<Actor><id>79415</id><Name>Nathan Fillion</Name><SortOrder>0</SortOrder></Actor>`)), ShouldBeNil)
			So(actor.ImagePath, ShouldBeEmpty)
			So(actor.Role, ShouldBeEmpty)
			So(actor.SortOrder, ShouldEqual, 0)
		})

		Convey("Element names match regardless of case", func() {
			So(actor.Deserialize(parse(`<Actor><ID>5</ID><NAME>Stana Katic</NAME><sortorder>1</sortorder></Actor>`)), ShouldBeNil)
			So(actor.ID, ShouldEqual, 5)
			So(actor.Name, ShouldEqual, "Stana Katic")
			So(actor.SortOrder, ShouldEqual, 1)
		})

		Convey("Malformed numbers leave the previous value", func() {
			So(actor.Deserialize(parse(fillion)), ShouldBeNil)
			So(actor.Deserialize(parse(`<Actor><id>abc</id><SortOrder></SortOrder><Name></Name></Actor>`)), ShouldBeNil)
			So(actor.ID, ShouldEqual, 79415)
			So(actor.SortOrder, ShouldEqual, 0)
			So(actor.Name, ShouldEqual, "Nathan Fillion")
		})

		Convey("Unknown elements are ignored", func() {
			So(actor.Deserialize(parse(`<Actor><Agent>someone</Agent></Actor>`)), ShouldBeNil)
			So(actor.Name, ShouldBeEmpty)
		})
	})
}

func TestActorNotifications(t *testing.T) {
	Convey("Given an observed actor", t, func() {
		actor := NewActor()
		changes := watch(&actor.Observable)

		Convey("Each changed field notifies once", func() {
			So(actor.Deserialize(parse(fillion)), ShouldBeNil)
			So(changes.fields, ShouldResemble, []string{"ID", "ImagePath", "Name", "Role", "SortOrder"})
		})

		Convey("Deserializing the same content again is silent", func() {
			So(actor.Deserialize(parse(fillion)), ShouldBeNil)
			changes.fields = nil
			So(actor.Deserialize(parse(fillion)), ShouldBeNil)
			So(changes.fields, ShouldBeEmpty)
		})

		Convey("Text differing only in case is not a change", func() {
			So(actor.Deserialize(parse(fillion)), ShouldBeNil)
			changes.fields = nil
			So(actor.Deserialize(parse(`<Actor><Name>NATHAN FILLION</Name></Actor>`)), ShouldBeNil)
			So(changes.fields, ShouldBeEmpty)
			So(actor.Name, ShouldEqual, "Nathan Fillion")
		})
	})
}

func TestActorOrder(t *testing.T) {
	Convey("Actors sort by descending SortOrder", t, func() {
		a, b, c := NewActor(), NewActor(), NewActor()
		a.Name, a.SortOrder = "a", 0
		b.Name, b.SortOrder = "b", 2
		c.Name, c.SortOrder = "c", 0

		actors := []*Actor{a, b, c}
		SortActors(actors)
		So(actors, ShouldResemble, []*Actor{b, a, c})
		So(CompareActors(b, a), ShouldBeLessThan, 0)
	})
}
