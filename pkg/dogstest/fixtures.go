/*
Copyright 2025 the Dogs API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package dogstest

import (
	"k8s.io/utils/ptr"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/openapi"
)

const (
	HerdingGroupID = "be0147df-7755-4228-b132-3518c0c6f4d4"
	HoundGroupID   = "5d2d4bb4-8c63-4e28-a2d7-b3d1ee2f7e0e"
	ToyGroupID     = "f56dc4b1-ba1a-4454-8ce2-bd5d41404a0c"

	BorderCollieID = "036feed0-da8a-42c9-ab9a-57449b530b13"
	CollieID       = "dd9362cc-52e0-462d-b856-fccdcf24b140"
	BeagleID       = "6ce5f6b8-1f7e-4a4c-a2a9-2f61b5d4b7c5"
	BassetHoundID  = "8b8a2a3c-2f57-4d38-a07c-3d6a1c5d4e5f"
	PugID          = "c4b8f5f3-9b3f-4f3a-8f7c-1f0d8c2f9e1a"
	ChihuahuaID    = "a1b2c3d4-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
)

// Data is the set of resources a fake server serves.
type Data struct {
	Breeds []openapi.Breed
	Facts  []openapi.Fact
	Groups []openapi.Group
}

func breed(id, groupID, name, description string, hypoallergenic bool, life, male, female [2]int) openapi.Breed {
	return openapi.Breed{
		Id:   id,
		Type: "breed",
		Attributes: openapi.BreedAttributes{
			Name:           name,
			Description:    ptr.To(description),
			Hypoallergenic: ptr.To(hypoallergenic),
			Life:           &openapi.Life{Min: life[0], Max: life[1]},
			MaleWeight:     &openapi.Weight{Min: male[0], Max: male[1]},
			FemaleWeight:   &openapi.Weight{Min: female[0], Max: female[1]},
		},
		Relationships: &openapi.BreedRelationships{
			Group: &openapi.ToOneRelationship{
				Data: openapi.ResourceIdentifier{Id: groupID, Type: "group"},
			},
		},
	}
}

func fact(id, body string) openapi.Fact {
	return openapi.Fact{
		Id:   id,
		Type: "fact",
		Attributes: openapi.FactAttributes{
			Body: ptr.To(body),
		},
	}
}

func group(id, name string, breedIDs ...string) openapi.Group {
	refs := make([]openapi.ResourceIdentifier, len(breedIDs))

	for i, breedID := range breedIDs {
		refs[i] = openapi.ResourceIdentifier{Id: breedID, Type: "breed"}
	}

	return openapi.Group{
		Id:   id,
		Type: "group",
		Attributes: openapi.GroupAttributes{
			Name: name,
		},
		Relationships: &openapi.GroupRelationships{
			Breeds: &openapi.ToManyRelationship{Data: refs},
		},
	}
}

// DefaultData returns a small, internally consistent set of breeds, facts and
// groups.
func DefaultData() Data {
	return Data{
		Breeds: []openapi.Breed{
			breed(BorderCollieID, HerdingGroupID, "Border Collie", "A highly intelligent herding dog.", false, [2]int{12, 15}, [2]int{14, 20}, [2]int{12, 19}),
			breed(CollieID, HerdingGroupID, "Collie", "A loyal, gentle herding dog.", false, [2]int{12, 14}, [2]int{27, 34}, [2]int{23, 29}),
			breed(BeagleID, HoundGroupID, "Beagle", "A small scent hound.", false, [2]int{12, 15}, [2]int{10, 11}, [2]int{9, 10}),
			breed(BassetHoundID, HoundGroupID, "Basset Hound", "A short-legged scent hound.", false, [2]int{12, 13}, [2]int{23, 29}, [2]int{20, 27}),
			breed(PugID, ToyGroupID, "Pug", "A charming toy breed with a wrinkled face.", false, [2]int{13, 15}, [2]int{6, 8}, [2]int{6, 8}),
			breed(ChihuahuaID, ToyGroupID, "Chihuahua", "The smallest recognised breed.", false, [2]int{14, 16}, [2]int{1, 3}, [2]int{1, 3}),
		},
		Facts: []openapi.Fact{
			fact("2d3e6d1c-0b3f-4a45-9c62-5c3ad3e3f0a1", "Dogs have about 1,700 taste buds."),
			fact("7a9c1f4e-3b2d-4e8a-9f6c-0d1e2f3a4b5c", "A dog's nose print is unique, much like a human fingerprint."),
			fact("b5c6d7e8-f9a0-4b1c-8d2e-3f4a5b6c7d8e", "Dalmatian puppies are born completely white."),
			fact("c1d2e3f4-a5b6-4c7d-9e8f-0a1b2c3d4e5f", "Greyhounds can reach speeds of up to 45 miles per hour."),
			fact("d4e5f6a7-b8c9-4d0e-8f1a-2b3c4d5e6f7a", "Puppies are born deaf and blind."),
			fact("e7f8a9b0-c1d2-4e3f-9a4b-5c6d7e8f9a0b", "Dogs sweat through the pads of their feet."),
		},
		Groups: []openapi.Group{
			group(HerdingGroupID, "Herding Group", BorderCollieID, CollieID),
			group(HoundGroupID, "Hound Group", BeagleID, BassetHoundID),
			group(ToyGroupID, "Toy Group", PugID, ChihuahuaID),
		},
	}
}
